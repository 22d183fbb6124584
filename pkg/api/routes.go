package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")

	// Entity operations
	router.HandleFunc("/entities/{entity}", h.HandleCreate).Methods("POST")
	router.HandleFunc("/entities/{entity}", h.HandleList).Methods("GET")
	router.HandleFunc("/entities/{entity}/batch", h.HandleBatchCreate).Methods("POST")
	router.HandleFunc("/entities/{entity}/filter", h.HandleFilter).Methods("GET")

	// Record operations (by ID)
	router.HandleFunc("/entities/{entity}/{id}", h.HandleGetById).Methods("GET")
	router.HandleFunc("/entities/{entity}/{id}", h.HandleUpdateById).Methods("PATCH")
	router.HandleFunc("/entities/{entity}/{id}", h.HandleDeleteById).Methods("DELETE")

	// Auth
	router.HandleFunc("/auth/me", h.HandleMe).Methods("GET")
	router.HandleFunc("/auth/logout", h.HandleLogout).Methods("POST")

	// Integrations
	router.HandleFunc("/integrations/core/invoke-llm", h.HandleInvokeLLM).Methods("POST")

	// Trip workflows
	router.HandleFunc("/trips", h.HandleCreateTrip).Methods("POST")
	router.HandleFunc("/trips/{id}", h.HandleEditTrip).Methods("PUT")
	router.HandleFunc("/trips/{id}/generate", h.HandleGenerateItinerary).Methods("POST")
	router.HandleFunc("/trips/{id}/expenses", h.HandleAddExpense).Methods("POST")
	router.HandleFunc("/trips/{id}/overview", h.HandleTripOverview).Methods("GET")

	// Dashboard
	router.HandleFunc("/me/trips", h.HandleMyTrips).Methods("GET")
	router.HandleFunc("/me/stats", h.HandleMyStats).Methods("GET")
}
