// Package integration holds the generative itinerary backends.
package integration

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
)

// DefaultMockDelay is the simulated latency of MockInvoker.
const DefaultMockDelay = 2 * time.Second

// ItineraryMarker is the prompt substring that triggers the fixed itinerary.
const ItineraryMarker = "travel itinerary"

// MockInvoker simulates a latent generative backend with a fixed response.
type MockInvoker struct {
	delay time.Duration
}

// NewMockInvoker creates a mock with the given delay. A negative delay uses DefaultMockDelay.
func NewMockInvoker(delay time.Duration) *MockInvoker {
	if delay < 0 {
		delay = DefaultMockDelay
	}
	return &MockInvoker{delay: delay}
}

// Invoke waits for the configured delay and returns MysorePlan when the prompt
// asks for a travel itinerary, or an empty record otherwise. The response
// schema is not consulted. Cancelling ctx aborts the wait.
func (m *MockInvoker) Invoke(ctx context.Context, req domain.InvokeRequest) (domain.Record, error) {
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !strings.Contains(req.Prompt, ItineraryMarker) {
		return domain.Record{}, nil
	}
	log.Debugf("Generating mock AI response for prompt of %d bytes", len(req.Prompt))
	return entity.ToRecord(MysorePlan())
}
