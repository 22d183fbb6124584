package integration

import (
	"context"
	"errors"
	"time"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

type timeoutInvoker struct {
	next    domain.Invoker
	timeout time.Duration
}

// WithTimeout bounds every call to next. A non-positive timeout returns next unchanged.
func WithTimeout(next domain.Invoker, timeout time.Duration) domain.Invoker {
	if timeout <= 0 {
		return next
	}
	return &timeoutInvoker{next: next, timeout: timeout}
}

func (t *timeoutInvoker) Invoke(ctx context.Context, req domain.InvokeRequest) (domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	rec, err := t.next.Invoke(ctx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		var invokeErr *InvokeError
		if !errors.As(err, &invokeErr) {
			err = &InvokeError{Backend: "invoker", Kind: ErrKindTimeout, Err: err}
		}
	}
	return rec, err
}
