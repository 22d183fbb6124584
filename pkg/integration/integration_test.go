package integration

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
)

const testDelay = 30 * time.Millisecond

func TestMockInvoker_ItineraryPrompt(t *testing.T) {
	mock := NewMockInvoker(testDelay)

	start := time.Now()
	rec, err := mock.Invoke(context.Background(), domain.InvokeRequest{
		Prompt: "Create a detailed travel itinerary for a trip to Mysore",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), testDelay)

	days, ok := rec["days"].([]interface{})
	require.True(t, ok)
	assert.Len(t, days, 2)
	assert.Equal(t, float64(120), rec["total_distance_km"])

	plan, err := entity.FromRecord[Plan](rec)
	require.NoError(t, err)
	assert.Equal(t, MysorePlan(), plan)
	assert.Equal(t, "Mysore Palace", plan.Days[0].Places[0].Name)
	assert.Len(t, plan.Days[0].Hotels, 1)
	assert.Empty(t, plan.Days[1].Hotels)
}

func TestMockInvoker_SchemaIgnored(t *testing.T) {
	mock := NewMockInvoker(0)
	rec, err := mock.Invoke(context.Background(), domain.InvokeRequest{
		Prompt:             "travel itinerary please",
		ResponseJSONSchema: map[string]interface{}{"type": "string"},
	})
	require.NoError(t, err)
	assert.Contains(t, rec, "days")
}

func TestMockInvoker_UnrelatedPrompt(t *testing.T) {
	mock := NewMockInvoker(testDelay)

	start := time.Now()
	rec, err := mock.Invoke(context.Background(), domain.InvokeRequest{Prompt: "unrelated"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), testDelay)
	assert.NotNil(t, rec)
	assert.Empty(t, rec)
}

func TestMockInvoker_MarkerIsCaseSensitive(t *testing.T) {
	rec, err := NewMockInvoker(0).Invoke(context.Background(), domain.InvokeRequest{Prompt: "Travel Itinerary"})
	require.NoError(t, err)
	assert.Empty(t, rec)
}

func TestMockInvoker_Cancel(t *testing.T) {
	mock := NewMockInvoker(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := mock.Invoke(ctx, domain.InvokeRequest{Prompt: "travel itinerary"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewMockInvoker_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultMockDelay, NewMockInvoker(-1).delay)
	assert.Equal(t, 2*time.Second, DefaultMockDelay)
}

func TestWithTimeout(t *testing.T) {
	slow := WithTimeout(NewMockInvoker(time.Hour), 20*time.Millisecond)

	_, err := slow.Invoke(context.Background(), domain.InvokeRequest{Prompt: "travel itinerary"})
	require.Error(t, err)
	var invokeErr *InvokeError
	require.True(t, errors.As(err, &invokeErr))
	assert.Equal(t, ErrKindTimeout, invokeErr.Kind)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	fast := WithTimeout(NewMockInvoker(0), time.Second)
	rec, err := fast.Invoke(context.Background(), domain.InvokeRequest{Prompt: "travel itinerary"})
	require.NoError(t, err)
	assert.Contains(t, rec, "days")

	mock := NewMockInvoker(0)
	assert.Same(t, mock, WithTimeout(mock, 0))
}

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Record
		kind    string
	}{
		{"plain object", `{"days": []}`, domain.Record{"days": []interface{}{}}, ""},
		{"fenced object", "```json\n{\"total_distance_km\": 12}\n```", domain.Record{"total_distance_km": float64(12)}, ""},
		{"null", `null`, domain.Record{}, ""},
		{"empty", "   ", nil, ErrKindEmpty},
		{"not json", "sure, here is your plan", nil, ErrKindDecode},
		{"array", `[1,2]`, nil, ErrKindDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeReply(tt.content)
			if tt.kind != "" {
				var invokeErr *InvokeError
				require.True(t, errors.As(err, &invokeErr))
				assert.Equal(t, tt.kind, invokeErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenAIInvoker(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		plan, _ := json.Marshal(MysorePlan())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o-mini",
			"choices": []interface{}{
				map[string]interface{}{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]interface{}{"role": "assistant", "content": string(plan)},
				},
			},
		})
	}))
	defer server.Close()

	inv := NewOpenAIInvoker("test-key", server.URL+"/", "")
	rec, err := inv.Invoke(context.Background(), domain.InvokeRequest{
		Prompt:             "Create a detailed travel itinerary",
		ResponseJSONSchema: map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)

	plan, err := entity.FromRecord[Plan](rec)
	require.NoError(t, err)
	assert.Len(t, plan.Days, 2)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	format, _ := gotBody["response_format"].(map[string]interface{})
	assert.Equal(t, "json_object", format["type"])
	messages, _ := gotBody["messages"].([]interface{})
	require.Len(t, messages, 2)
	system, _ := messages[0].(map[string]interface{})
	assert.Contains(t, system["content"], `{"type":"object"}`)
}

func TestOpenAIInvoker_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"bad request","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	inv := NewOpenAIInvoker("test-key", server.URL+"/", "gpt-4o")
	_, err := inv.Invoke(context.Background(), domain.InvokeRequest{Prompt: "travel itinerary"})
	require.Error(t, err)
	var invokeErr *InvokeError
	require.True(t, errors.As(err, &invokeErr))
	assert.Equal(t, ErrKindNetwork, invokeErr.Kind)
}
