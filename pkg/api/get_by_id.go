package api

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// HandleGetById handles GET requests to retrieve a specific record by ID
func (h *Handler) HandleGetById(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	log.Infof("handleGetById called for entity '%s', record '%s'", coll.Name(), id)

	rec, err := coll.Get(r.Context(), id)
	if err != nil {
		log.Errorf("Record '%s' not found in entity '%s': %v", id, coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
