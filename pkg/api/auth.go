package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HandleMe returns the current user
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.Auth.Me(r.Context())
	if err != nil {
		log.Errorf("Resolving current user failed: %v", err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleLogout clears all local state and redirects to the login page
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	redirect, err := h.client.Auth.Logout(r.Context())
	if err != nil {
		log.Errorf("Logout failed: %v", err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
