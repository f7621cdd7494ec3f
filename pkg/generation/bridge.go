package generation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

const (
	// TextFailure is returned by GenerateText when the call fails.
	TextFailure = "Error generating response."
	// TextEmpty is returned by GenerateText when the service replies with no
	// text.
	TextEmpty = "No response generated."

	// FallbackAPIKeyEnv is consulted when the configured variable is unset.
	FallbackAPIKeyEnv = "GEMINI_API_KEY"
)

// ErrNotAnArray reports a generated document that is valid JSON but not an
// array. It matches models.ErrInvalidRootShape as well.
var ErrNotAnArray = fmt.Errorf("generated data is not an array: %w", models.ErrInvalidRootShape)

// Bridge turns user requests into generation calls and validates replies.
type Bridge struct {
	client Client
	model  string
	logf   func(format string, args ...any)
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithModel sets the model name sent with every request.
func WithModel(model string) Option {
	return func(b *Bridge) { b.model = model }
}

// WithLogf sets the hook that receives failures GenerateText swallows.
func WithLogf(fn func(format string, args ...any)) Option {
	return func(b *Bridge) { b.logf = fn }
}

// NewBridge returns a bridge using client.
func NewBridge(client Client, opts ...Option) *Bridge {
	b := &Bridge{
		client: client,
		model:  models.DefaultSettings().AI.Model,
		logf:   func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewGeminiBridge builds a bridge from settings. It fails with
// models.ErrConfiguration when no credential is available.
func NewGeminiBridge(cfg models.AISettings, opts ...Option) (*Bridge, error) {
	key, err := APIKey(cfg)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client := NewGeminiClient(cfg.Endpoint, key, timeout)
	opts = append([]Option{WithModel(cfg.Model)}, opts...)
	return NewBridge(client, opts...), nil
}

// APIKey looks up the credential named by cfg.APIKeyEnv, falling back to
// GEMINI_API_KEY.
func APIKey(cfg models.AISettings) (string, error) {
	names := []string{cfg.APIKeyEnv, FallbackAPIKeyEnv}
	for _, name := range names {
		if name == "" {
			continue
		}
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: API key not found in environment (set %s)", models.ErrConfiguration, cfg.APIKeyEnv)
}

// TextPrompt builds the prompt for a free-text request.
func TextPrompt(prompt, background string) string {
	if background == "" {
		return prompt
	}
	return "Context:\n" + background + "\n\nTask: " + prompt
}

// ArrayPrompt builds the instruction sent when asking for a document.
func ArrayPrompt(description string) string {
	return `Generate a JSON array of objects based on this description: "` + description + `". ` +
		"\n    Ensure the root is an Array. Return ONLY valid JSON."
}

// GenerateText asks for free text, optionally prefixed with background
// context. It never fails: errors are logged and replaced by TextFailure.
func (b *Bridge) GenerateText(ctx context.Context, prompt, background string) string {
	text, err := b.client.GenerateContent(ctx, Request{Model: b.model, Prompt: TextPrompt(prompt, background)})
	if err != nil {
		b.logf("text generation failed: %v", err)
		return TextFailure
	}
	if text == "" {
		return TextEmpty
	}
	return text
}

// GenerateRootArray asks for a JSON array matching description. Transport
// and parse failures wrap models.ErrExternalService. A valid reply that is
// not an array fails with ErrNotAnArray. An empty reply is an empty array.
func (b *Bridge) GenerateRootArray(ctx context.Context, description string) (any, error) {
	text, err := b.client.GenerateContent(ctx, Request{Model: b.model, Prompt: ArrayPrompt(description), JSON: true})
	if err != nil {
		if errors.Is(err, models.ErrExternalService) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", models.ErrExternalService, err)
	}
	text = stripFence(text)
	if text == "" {
		return []any{}, nil
	}
	v, err := codec.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrExternalService, err)
	}
	if _, ok := v.([]any); !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotAnArray, codec.Describe(v))
	}
	return v, nil
}

// GenerateRoot is GenerateRootArray decoded into a document root.
func (b *Bridge) GenerateRoot(ctx context.Context, description string) (models.Root, error) {
	v, err := b.GenerateRootArray(ctx, description)
	if err != nil {
		return nil, err
	}
	return codec.DecodeRoot(v)
}

// stripFence removes a surrounding markdown code fence, which some models add
// even in JSON mode.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = ""
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
