// Package client assembles the entity store, auth and integration layers into
// the single facade the rest of the application talks to.
package client

import (
	"github.com/adfharrison1/go-voyage/pkg/auth"
	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
)

// Entities groups the untyped collections by name.
type Entities struct {
	Trip        *entity.Collection
	Itinerary   *entity.Collection
	ChatMessage *entity.Collection
}

// Integrations groups the external backends.
type Integrations struct {
	Core domain.Invoker
}

// Client is the data-access facade.
type Client struct {
	Auth         *auth.Service
	Entities     Entities
	Integrations Integrations

	Trips        *entity.Repository[domain.Trip]
	Itineraries  *entity.Repository[domain.Itinerary]
	ChatMessages *entity.Repository[domain.ChatMessage]

	registry *entity.Registry
}

// New creates a client over store. invoker backs Integrations.Core.
func New(store domain.KVStore, invoker domain.Invoker, options ...entity.Option) *Client {
	reg := entity.NewRegistry(store, options...)
	c := &Client{
		Auth: auth.NewService(reg),
		Entities: Entities{
			Trip:        reg.Register(domain.EntityTrip),
			Itinerary:   reg.Register(domain.EntityItinerary),
			ChatMessage: reg.Register(domain.EntityChatMessage),
		},
		Integrations: Integrations{Core: invoker},
		registry:     reg,
	}
	c.Trips = entity.NewRepository[domain.Trip](c.Entities.Trip)
	c.Itineraries = entity.NewRepository[domain.Itinerary](c.Entities.Itinerary)
	c.ChatMessages = entity.NewRepository[domain.ChatMessage](c.Entities.ChatMessage)
	return c
}

// Entity looks a collection up by name.
func (c *Client) Entity(name string) (*entity.Collection, error) {
	return c.registry.Get(name)
}

// EntityNames lists the registered collection names.
func (c *Client) EntityNames() []string {
	return c.registry.Names()
}

// Close releases the underlying store.
func (c *Client) Close() error {
	return c.registry.Store().Close()
}
