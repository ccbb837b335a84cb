package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/litetravel/notescope/pkg/config"
	"github.com/litetravel/notescope/pkg/content"
)

// errPermanent marks errors that must not be retried (auth, malformed
// request, other API errors). Transient errors (timeout, rate limit) are
// returned bare so the repeater keeps going.
var errPermanent = errors.New("permanent llm error")

// maxBackoffDelay caps the exponential backoff between retries
const maxBackoffDelay = 10 * time.Second

// OpenAIProvider calls an OpenAI-compatible chat completion API. Works with
// any endpoint speaking the protocol (OpenAI, Volcengine Ark, Ollama, etc).
// The underlying client is shared read-only across concurrent calls.
type OpenAIProvider struct {
	client *openai.Client
	cfg    config.LLMConfig
}

// NewOpenAIProvider creates a provider for the configured endpoint
func NewOpenAIProvider(cfg config.LLMConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Name returns the configured provider name
func (p *OpenAIProvider) Name() string {
	if p.cfg.Provider != "" {
		return p.cfg.Provider
	}
	return "openai"
}

// Model returns the configured model identifier
func (p *OpenAIProvider) Model() string { return p.cfg.Model }

// Config returns the provider configuration for introspection
func (p *OpenAIProvider) Config() config.LLMConfig { return p.cfg }

// CallOption overrides a request parameter for a single call
type CallOption func(*callOpts)

type callOpts struct {
	model       string
	temperature *float32
	maxTokens   int
}

// WithModel overrides the configured model for one call
func WithModel(model string) CallOption {
	return func(o *callOpts) { o.model = model }
}

// WithTemperature overrides the configured temperature for one call
func WithTemperature(t float32) CallOption {
	return func(o *callOpts) { o.temperature = &t }
}

// WithMaxTokens overrides the configured token limit for one call
func WithMaxTokens(n int) CallOption {
	return func(o *callOpts) { o.maxTokens = n }
}

// buildRequest assembles a chat request from config and per-call overrides
func (p *OpenAIProvider) buildRequest(systemPrompt, userContent string, opts []CallOption) openai.ChatCompletionRequest {
	co := callOpts{}
	for _, opt := range opts {
		opt(&co)
	}

	model := p.cfg.Model
	if co.model != "" {
		model = co.model
	}
	temperature := float32(p.cfg.Temperature)
	if co.temperature != nil {
		temperature = *co.temperature
	}
	maxTokens := p.cfg.MaxTokens
	if co.maxTokens > 0 {
		maxTokens = co.maxTokens
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	}
}

// ChatCompletion submits the instruction pair and returns the model's text.
// Transient failures (timeout, rate limit) are retried with exponential
// backoff up to the configured attempt budget; everything else propagates
// immediately.
func (p *OpenAIProvider) ChatCompletion(ctx context.Context, systemPrompt, userContent string, opts ...CallOption) (string, error) {
	req := p.buildRequest(systemPrompt, userContent, opts)

	attempts := p.cfg.MaxRetries
	if attempts < 1 {
		attempts = 3
	}
	delay := p.cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	retrier := repeater.NewBackoff(attempts, delay, repeater.WithMaxDelay(maxBackoffDelay))

	var result string
	err := retrier.Do(ctx, func() error {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			if isTransient(err) {
				lgr.Printf("[WARN] transient llm error, will retry: %v", err)
				return err
			}
			return fmt.Errorf("%w: %w", errPermanent, err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("%w: no choices in response", errPermanent)
		}
		result = resp.Choices[0].Message.Content
		return nil
	}, errPermanent)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	return result, nil
}

// StreamChunk is one fragment of a streamed completion. A chunk with Err set
// is always the last one delivered.
type StreamChunk struct {
	Content string
	Err     error
}

// ChatCompletionStream submits the instruction pair and returns a channel of
// response fragments. The channel closes when the remote stream ends. There
// is no retry here, a mid-stream failure is delivered to the consumer as the
// final chunk.
func (p *OpenAIProvider) ChatCompletionStream(ctx context.Context, systemPrompt, userContent string, opts ...CallOption) (<-chan StreamChunk, error) {
	req := p.buildRequest(systemPrompt, userContent, opts)
	req.Stream = true

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create completion stream: %w", err)
	}

	ch := make(chan StreamChunk)
	go func() {
		defer close(ch)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				select {
				case ch <- StreamChunk{Err: fmt.Errorf("stream recv: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case ch <- StreamChunk{Content: resp.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// AnalyzeNote runs a completion and decodes the response into a map in one
// call, for callers that don't need the full pipeline
func (p *OpenAIProvider) AnalyzeNote(ctx context.Context, systemPrompt, noteContent string, opts ...CallOption) (map[string]any, error) {
	resp, err := p.ChatCompletion(ctx, systemPrompt, noteContent, opts...)
	if err != nil {
		return nil, err
	}
	return content.NewResponseParser().ParseResponse(resp), nil
}

// isTransient reports whether an error is worth retrying: request timeouts
// and rate-limit responses only
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
