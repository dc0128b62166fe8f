// Package gemini is a minimal client for the Generative Language REST API
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/studyforge/backend/internal/ai"
)

// Options configures the client
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	EmbedModel string
	// Timeout bounds each HTTP round trip; callers add their own context deadline on top.
	Timeout time.Duration
}

// Client calls generateContent and embedContent
type Client struct {
	http       *resty.Client
	model      string
	embedModel string
}

// NewClient creates a new Gemini client
func NewClient(opts Options) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(opts.BaseURL, "/")).
		SetHeader("x-goog-api-key", opts.APIKey).
		SetHeader("Content-Type", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	return &Client{http: httpClient, model: opts.Model, embedModel: opts.EmbedModel}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	TopK             int     `json:"topK"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// configFor returns sampling settings per response format
func configFor(format ai.Format) generationConfig {
	cfg := generationConfig{TopP: 0.95, TopK: 40, MaxOutputTokens: 8192, ResponseMimeType: string(format)}
	if format == ai.FormatJSON {
		cfg.Temperature = 0.9
	} else {
		cfg.Temperature = 0.8
	}
	return cfg
}

// Generate implements ai.TextModel. The preset example is sent as a prior
// user/model turn so every call is self-contained.
func (c *Client) Generate(ctx context.Context, prompt ai.Prompt) (string, error) {
	req := generateRequest{GenerationConfig: configFor(prompt.Format)}
	if prompt.Example.Request != "" {
		req.Contents = append(req.Contents,
			content{Role: "user", Parts: []part{{Text: prompt.Example.Request}}},
			content{Role: "model", Parts: []part{{Text: prompt.Example.Response}}},
		)
	}
	req.Contents = append(req.Contents, content{Role: "user", Parts: []part{{Text: prompt.Text}}})

	var out generateResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	if out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked prompt: %s", out.PromptFeedback.BlockReason)
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("gemini returned empty text (finish reason %s)", out.Candidates[0].FinishReason)
	}
	return text.String(), nil
}

type embedRequest struct {
	Model   string  `json:"model"`
	Content content `json:"content"`
}

type embedResponse struct {
	Embedding struct {
		Values []float64 `json:"values"`
	} `json:"embedding"`
}

// Embed returns the embedding vector of text
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var out embedResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.embedModel).
		SetBody(embedRequest{
			Model:   "models/" + c.embedModel,
			Content: content{Parts: []part{{Text: text}}},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1beta/models/{model}:embedContent")
	if err != nil {
		return nil, fmt.Errorf("gemini embed request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini embed returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if len(out.Embedding.Values) == 0 {
		return nil, errors.New("gemini returned an empty embedding")
	}
	return out.Embedding.Values, nil
}
