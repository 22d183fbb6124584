package api

import (
	"github.com/adfharrison1/go-voyage/pkg/client"
	"github.com/adfharrison1/go-voyage/pkg/planner"
)

// Handler provides HTTP handlers for the entity and planner API
type Handler struct {
	client  *client.Client
	planner *planner.Service
}

// NewHandler creates a new API handler over the given client
func NewHandler(c *client.Client) *Handler {
	return &Handler{
		client:  c,
		planner: planner.NewService(c),
	}
}
