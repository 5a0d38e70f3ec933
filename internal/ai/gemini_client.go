package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModelsPath     = "/v1/models/"
)

type GeminiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration // 0 keeps the transport default
}

type GeminiClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultGeminiBaseURL
	}

	return &GeminiClient{
		baseURL: base,
		model:   strings.TrimPrefix(strings.TrimSpace(cfg.Model), "models/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *GeminiClient) Name() string { return "Gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

// generateContentResponse keeps pointers so that absent fields are detectable.
type generateContentResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) endpoint() string {
	return c.baseURL + geminiModelsPath + c.model + ":generateContent?key=" + url.QueryEscape(c.apiKey)
}

func (c *GeminiClient) Send(ctx context.Context, prompt string) Result {
	b, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return Result{Err: err}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint(),
		bytes.NewReader(b),
	)
	if err != nil {
		return Result{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("gemini request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return Result{StatusCode: resp.StatusCode, Err: fmt.Errorf("gemini read body: %w", err)}
	}

	return Result{Payload: string(body), StatusCode: resp.StatusCode}
}

// ReplyText follows candidates[0].content.parts[0].text.
func (c *GeminiClient) ReplyText(payload string) (string, error) {
	var resp generateContentResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrNoParts
	}

	text := content.Parts[0].Text
	if text == nil {
		return "", ErrNoText
	}

	return *text, nil
}
