package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// Error kinds reported by real backends.
const (
	ErrKindNetwork = "network"
	ErrKindDecode  = "decode"
	ErrKindEmpty   = "empty"
	ErrKindTimeout = "timeout"
)

// InvokeError describes a failed call to a generative backend.
type InvokeError struct {
	Backend string
	Kind    string
	Err     error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("%s invoke failed (%s): %v", e.Backend, e.Kind, e.Err)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

const systemPrompt = "You are a travel planner. Reply with a single JSON object and nothing else."

// OpenAIInvoker calls an OpenAI-compatible chat completions API in JSON mode.
type OpenAIInvoker struct {
	client openai.Client
	model  string
}

// NewOpenAIInvoker creates an invoker. baseURL may be empty for api.openai.com.
func NewOpenAIInvoker(apiKey, baseURL, model string) *OpenAIInvoker {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIInvoker{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Invoke sends the prompt, with the response schema folded into the system
// message, and decodes the reply into a record.
func (o *OpenAIInvoker) Invoke(ctx context.Context, req domain.InvokeRequest) (domain.Record, error) {
	system := systemPrompt
	if len(req.ResponseJSONSchema) > 0 {
		schema, err := json.Marshal(req.ResponseJSONSchema)
		if err != nil {
			return nil, &InvokeError{Backend: "openai", Kind: ErrKindDecode, Err: err}
		}
		system += "\nThe JSON object must follow this JSON schema:\n" + string(schema)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(req.Prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &InvokeError{Backend: "openai", Kind: ErrKindTimeout, Err: err}
		}
		return nil, &InvokeError{Backend: "openai", Kind: ErrKindNetwork, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &InvokeError{Backend: "openai", Kind: ErrKindEmpty, Err: errors.New("no choices returned")}
	}
	return DecodeReply(resp.Choices[0].Message.Content)
}

// DecodeReply parses a model reply as a JSON object, tolerating a surrounding
// markdown code fence.
func DecodeReply(content string) (domain.Record, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &InvokeError{Backend: "openai", Kind: ErrKindEmpty, Err: errors.New("empty reply")}
	}

	var rec domain.Record
	if err := json.Unmarshal([]byte(content), &rec); err != nil {
		return nil, &InvokeError{Backend: "openai", Kind: ErrKindDecode, Err: err}
	}
	if rec == nil {
		rec = domain.Record{}
	}
	return rec, nil
}
