package api

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Entities []string `json:"entities"`
}

// HandleHealth handles GET requests to the health check endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Message:  "voyage is running",
		Entities: h.client.EntityNames(),
	})
}
