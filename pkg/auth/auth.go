// Package auth provides the fixed-identity auth layer.
package auth

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
)

// LoginPath is where callers are sent after logout.
const LoginPath = "/login"

// CurrentUser is the identity returned by Me.
var CurrentUser = domain.User{Email: "traveler@mysuru.app", Name: "Traveler"}

// Service answers identity questions and logs the user out.
type Service struct {
	registry *entity.Registry
}

// NewService creates an auth service over the registry's store.
func NewService(registry *entity.Registry) *Service {
	return &Service{registry: registry}
}

// Me returns the fixed current user. No session state is consulted.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	return CurrentUser, nil
}

// Logout clears every persisted key, not only the current user's data, and
// returns the path to redirect to.
func (s *Service) Logout(ctx context.Context) (string, error) {
	log.Info("Logging out...")
	err := s.registry.WithAllLocked(func() error {
		return s.registry.Store().Clear(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("failed to clear local state: %w", err)
	}
	return LoginPath, nil
}
