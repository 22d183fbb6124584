package api

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/integration"
)

// InvokeLLMRequest is the body of an invoke-llm call
type InvokeLLMRequest struct {
	Prompt                 string                 `json:"prompt"`
	ResponseJSONSchema     map[string]interface{} `json:"response_json_schema"`
	AddContextFromInternet bool                   `json:"add_context_from_internet"`
}

// HandleInvokeLLM forwards a prompt to the configured integration backend
func (h *Handler) HandleInvokeLLM(w http.ResponseWriter, r *http.Request) {
	var req InvokeLLMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Infof("handleInvokeLLM called with prompt of %d bytes", len(req.Prompt))

	rec, err := h.client.Integrations.Core.Invoke(r.Context(), domain.InvokeRequest{
		Prompt:                 req.Prompt,
		ResponseJSONSchema:     req.ResponseJSONSchema,
		AddContextFromInternet: req.AddContextFromInternet,
	})
	if err != nil {
		log.Errorf("Invoke failed: %v", err)
		WriteJSONError(w, invokeStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// invokeStatus maps integration failures to gateway errors
func invokeStatus(err error) int {
	var invokeErr *integration.InvokeError
	if errors.As(err, &invokeErr) {
		if invokeErr.Kind == integration.ErrKindTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return statusFor(err)
}
