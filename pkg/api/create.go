package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/entity"
)

// collection resolves the {entity} route variable, writing a 404 when it is unknown
func (h *Handler) collection(w http.ResponseWriter, r *http.Request) (*entity.Collection, bool) {
	name := mux.Vars(r)["entity"]
	coll, err := h.client.Entity(name)
	if err != nil {
		log.Warnf("Unknown entity '%s'", name)
		WriteJSONError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return coll, true
}

// HandleCreate handles POST requests to create a record in a collection
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	log.Infof("handleCreate called for entity '%s'", coll.Name())

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := coll.Create(r.Context(), fields)
	if err != nil {
		log.Errorf("Create failed for entity '%s': %v", coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Created record '%s' in entity '%s'", rec.ID(), coll.Name())
	writeJSON(w, http.StatusCreated, rec)
}
