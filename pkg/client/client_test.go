package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/integration"
	"github.com/adfharrison1/go-voyage/pkg/storage"
)

func TestClient_Wiring(t *testing.T) {
	ctx := context.Background()
	c := New(storage.NewMemoryStore(), integration.NewMockInvoker(0))
	defer c.Close()

	assert.Equal(t, []string{"ChatMessage", "Itinerary", "Trip"}, c.EntityNames())

	trip, err := c.Entities.Trip.Create(ctx, map[string]interface{}{"name": "Goa Trip"})
	require.NoError(t, err)

	typed, err := c.Trips.Get(ctx, trip.ID())
	require.NoError(t, err)
	assert.Equal(t, "Goa Trip", typed.Name)

	coll, err := c.Entity("Trip")
	require.NoError(t, err)
	assert.Same(t, c.Entities.Trip, coll)

	_, err = c.Entity("Booking")
	assert.True(t, errors.Is(err, domain.ErrUnknownEntity))

	user, err := c.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "traveler@mysuru.app", user.Email)

	rec, err := c.Integrations.Core.Invoke(ctx, domain.InvokeRequest{Prompt: "travel itinerary"})
	require.NoError(t, err)
	assert.Contains(t, rec, "days")
}

func TestClient_LogoutThenUse(t *testing.T) {
	ctx := context.Background()
	c := New(storage.NewMemoryStore(), integration.NewMockInvoker(0))

	_, err := c.Entities.ChatMessage.Create(ctx, map[string]interface{}{"message": "hello"})
	require.NoError(t, err)

	redirect, err := c.Auth.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/login", redirect)

	items, err := c.Entities.ChatMessage.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Collections keep working after logout
	_, err = c.Entities.ChatMessage.Create(ctx, map[string]interface{}{"message": "again"})
	require.NoError(t, err)
}
