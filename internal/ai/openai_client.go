package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openai.GPT4oMini
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}
	oc.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: bodyRecorder{next: http.DefaultTransport},
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

func (c *OpenAIClient) Name() string { return "OpenAI" }

// Send returns the body exactly as the provider sent it. A 2xx body the SDK
// could not decode comes back as a successful Result so ReplyText reports it.
func (c *OpenAIClient) Send(ctx context.Context, prompt string) Result {
	ctx, rec := withRecorder(ctx)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Println("[openai] error:", err)
		if rec.status != 0 {
			return Result{Payload: string(rec.body), StatusCode: rec.status}
		}
		return Result{Err: err}
	}

	if len(rec.body) > 0 {
		return Result{Payload: string(rec.body), StatusCode: rec.status}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Payload: string(b), StatusCode: http.StatusOK}
}

// ReplyText follows choices[0].message.content.
func (c *OpenAIClient) ReplyText(payload string) (string, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
