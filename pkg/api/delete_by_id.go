package api

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// HandleDeleteById handles DELETE requests. Deleting a missing id still succeeds.
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	log.Infof("handleDeleteById called for entity '%s', record '%s'", coll.Name(), id)

	res, err := coll.Delete(r.Context(), id)
	if err != nil {
		log.Errorf("Delete failed for record '%s' in entity '%s': %v", id, coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Deleted record '%s' from entity '%s'", id, coll.Name())
	writeJSON(w, http.StatusOK, res)
}
