package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// maxBatchSize caps the records accepted by one batch create
const maxBatchSize = 1000

// BatchCreateRequest represents the request body for batch create operations
type BatchCreateRequest struct {
	Records []map[string]interface{} `json:"records"`
}

// BatchCreateResponse represents the response for batch create operations
type BatchCreateResponse struct {
	Success      bool            `json:"success"`
	CreatedCount int             `json:"created_count"`
	Entity       string          `json:"entity"`
	Records      []domain.Record `json:"records"`
}

// HandleBatchCreate handles POST requests to create several records at once.
// Records are created in order; the first failure stops the batch.
func (h *Handler) HandleBatchCreate(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	log.Infof("handleBatchCreate called for entity '%s'", coll.Name())

	var req BatchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Records) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No records provided")
		return
	}
	if len(req.Records) > maxBatchSize {
		log.Errorf("Too many records for batch create: %d", len(req.Records))
		WriteJSONError(w, http.StatusBadRequest, "Maximum 1000 records allowed per batch")
		return
	}

	created := make([]domain.Record, 0, len(req.Records))
	for _, fields := range req.Records {
		rec, err := coll.Create(r.Context(), fields)
		if err != nil {
			log.Errorf("Batch create failed for entity '%s' after %d records: %v", coll.Name(), len(created), err)
			WriteJSONError(w, statusFor(err), err.Error())
			return
		}
		created = append(created, rec)
	}

	log.Infof("Batch create successful for entity '%s', created %d records", coll.Name(), len(created))
	writeJSON(w, http.StatusCreated, BatchCreateResponse{
		Success:      true,
		CreatedCount: len(created),
		Entity:       coll.Name(),
		Records:      created,
	})
}
