package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// HandleUpdateById handles PATCH requests merging fields into a record
func (h *Handler) HandleUpdateById(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	log.Infof("handleUpdateById called for entity '%s', record '%s'", coll.Name(), id)

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := coll.Update(r.Context(), id, fields)
	if err != nil {
		log.Errorf("Update failed for record '%s' in entity '%s': %v", id, coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Updated record '%s' in entity '%s'", id, coll.Name())
	writeJSON(w, http.StatusOK, rec)
}
