package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litetravel/notescope/pkg/config"
)

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Provider:   "test",
		Endpoint:   endpoint,
		APIKey:     "test-key",
		Model:      "test-model",
		MaxTokens:  100,
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Millisecond, // keep retry tests fast
	}
}

func completionResponse(text string) string {
	resp := openai.ChatCompletionResponse{
		ID:    "chatcmpl-1",
		Model: "test-model",
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: text}},
		},
	}
	out, _ := json.Marshal(resp)
	return string(out)
}

func TestOpenAIProvider_ChatCompletion(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse(`{"sentiment": "positive"}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	result, err := p.ChatCompletion(context.Background(), "you are an analyst", "analyze this note")
	require.NoError(t, err)
	assert.Equal(t, `{"sentiment": "positive"}`, result)

	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, "you are an analyst", gotReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, gotReq.Messages[1].Role)
	assert.Equal(t, "analyze this note", gotReq.Messages[1].Content)
}

func TestOpenAIProvider_ChatCompletion_CallOptions(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse("ok"))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	_, err := p.ChatCompletion(context.Background(), "s", "u",
		WithModel("other-model"), WithTemperature(0.9), WithMaxTokens(42))
	require.NoError(t, err)

	assert.Equal(t, "other-model", gotReq.Model)
	assert.InDelta(t, 0.9, gotReq.Temperature, 0.001)
	assert.Equal(t, 42, gotReq.MaxTokens)
}

func TestOpenAIProvider_ChatCompletion_RetriesRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "requests"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse("recovered"))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	result, err := p.ChatCompletion(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestOpenAIProvider_ChatCompletion_ExhaustsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "requests"}}`)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	_, err := p.ChatCompletion(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "should stop after the attempt budget")
}

func TestOpenAIProvider_ChatCompletion_NoRetryOnAuthError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	_, err := p.ChatCompletion(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "permanent errors must not be retried")
}

func TestOpenAIProvider_ChatCompletion_NoChoices(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-1", "model": "test-model", "choices": []}`)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	_, err := p.ChatCompletion(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestOpenAIProvider_ChatCompletionStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{"西湖", "很美"}
		for _, c := range chunks {
			resp := openai.ChatCompletionStreamResponse{
				ID:    "chatcmpl-1",
				Model: "test-model",
				Choices: []openai.ChatCompletionStreamChoice{
					{Delta: openai.ChatCompletionStreamChoiceDelta{Content: c}},
				},
			}
			out, _ := json.Marshal(resp)
			fmt.Fprintf(w, "data: %s\n\n", out)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	ch, err := p.ChatCompletionStream(context.Background(), "s", "u")
	require.NoError(t, err)

	var got string
	for chunk := range ch {
		require.NoError(t, chunk.Err)
		got += chunk.Content
	}
	assert.Equal(t, "西湖很美", got)
}

func TestOpenAIProvider_AnalyzeNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse("```json\n{\"sentiment\": \"positive\"}\n```"))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	data, err := p.AnalyzeNote(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "positive", data["sentiment"])
}

func TestOpenAIProvider_Name(t *testing.T) {
	assert.Equal(t, "test", NewOpenAIProvider(config.LLMConfig{Provider: "test"}).Name())
	assert.Equal(t, "openai", NewOpenAIProvider(config.LLMConfig{}).Name())
	assert.Equal(t, "m", NewOpenAIProvider(config.LLMConfig{Model: "m"}).Model())
}
