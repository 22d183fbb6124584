package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HandleList handles GET requests listing a collection, optionally sorted with ?sort=-created_date
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}
	sortBy := r.URL.Query().Get("sort")

	log.Infof("handleList called for entity '%s' (sort '%s')", coll.Name(), sortBy)

	recs, err := coll.List(r.Context(), sortBy)
	if err != nil {
		log.Errorf("List failed for entity '%s': %v", coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Found %d records in entity '%s'", len(recs), coll.Name())
	writeJSON(w, http.StatusOK, recs)
}
