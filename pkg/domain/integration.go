package domain

import "context"

// InvokeRequest is a request to a generative backend.
type InvokeRequest struct {
	Prompt                 string                 `json:"prompt"`
	ResponseJSONSchema     map[string]interface{} `json:"response_json_schema,omitempty"`
	AddContextFromInternet bool                   `json:"add_context_from_internet,omitempty"`
}

// Invoker is implemented by generative backends, mock or real.
type Invoker interface {
	Invoke(ctx context.Context, req InvokeRequest) (Record, error)
}
