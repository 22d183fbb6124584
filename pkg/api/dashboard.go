package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HandleMyTrips lists the current user's trips, newest first, optionally filtered by ?status=
func (h *Handler) HandleMyTrips(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.Auth.Me(r.Context())
	if err != nil {
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	trips, err := h.planner.UserTrips(r.Context(), user.Email, r.URL.Query().Get("status"))
	if err != nil {
		log.Errorf("Listing trips for '%s' failed: %v", user.Email, err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// HandleMyStats returns trip counts for the current user
func (h *Handler) HandleMyStats(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.Auth.Me(r.Context())
	if err != nil {
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	stats, err := h.planner.Stats(r.Context(), user.Email)
	if err != nil {
		log.Errorf("Stats for '%s' failed: %v", user.Email, err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
