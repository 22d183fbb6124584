package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HandleFilter handles GET requests filtering a collection by query parameters.
// Values are passed through as strings; numeric fields still match through loose equality.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	criteria := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			criteria[key] = values[0] // Take first value if multiple provided
		}
	}

	log.Infof("handleFilter called for entity '%s' with criteria %v", coll.Name(), criteria)

	recs, err := coll.Filter(r.Context(), criteria)
	if err != nil {
		log.Errorf("Filter failed for entity '%s': %v", coll.Name(), err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Found %d records in entity '%s' with criteria %v", len(recs), coll.Name(), criteria)
	writeJSON(w, http.StatusOK, recs)
}
