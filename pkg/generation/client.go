// Package generation talks to the external text generation service used to
// draft documents and free text.
package generation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Request is one generation call.
type Request struct {
	Model  string
	Prompt string
	// JSON asks the service to reply with application/json.
	JSON bool
}

// Client sends a prompt and returns the generated text.
type Client interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
}

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// NewGeminiClient returns a client for endpoint using apiKey.
func NewGeminiClient(endpoint, apiKey string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent implements Client. Transport errors, non-2xx replies and
// undecodable bodies wrap models.ErrExternalService. A reply without text
// returns "" and no error.
func (c *GeminiClient) GenerateContent(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.JSON {
		body.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", models.ErrExternalService, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.Endpoint, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.APIKey)

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", models.ErrExternalService, err)
	}

	var parsed geminiResponse
	decodeErr := json.Unmarshal(data, &parsed)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if decodeErr == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s: %s", models.ErrExternalService, resp.Status, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", models.ErrExternalService, decodeErr)
	}

	var text strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, part := range parsed.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
