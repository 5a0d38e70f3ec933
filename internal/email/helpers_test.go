package email

import (
	"context"
	"encoding/json"

	"github.com/Vovarama1992/email-reply-writer/internal/ai"
)

func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

// testModel sends through mockSend and decodes with the real Gemini envelope.
type testModel struct {
	mockSend func(ctx context.Context, prompt string) ai.Result
	gemini   *ai.GeminiClient
}

func newTestModel(send func(ctx context.Context, prompt string) ai.Result) *testModel {
	return &testModel{
		mockSend: send,
		gemini:   ai.NewGeminiClient(ai.GeminiConfig{Model: "m", APIKey: "k"}),
	}
}

func (m *testModel) Name() string { return "Gemini" }

func (m *testModel) Send(ctx context.Context, prompt string) ai.Result {
	return m.mockSend(ctx, prompt)
}

func (m *testModel) ReplyText(payload string) (string, error) {
	return m.gemini.ReplyText(payload)
}

type testRepo struct {
	saved     []Generation
	saveErr   error
	recent    []Generation
	lastLimit int
}

func (r *testRepo) EnsureSchema(context.Context) error { return nil }

func (r *testRepo) SaveGeneration(_ context.Context, g *Generation) error {
	r.saved = append(r.saved, *g)
	return r.saveErr
}

func (r *testRepo) RecentGenerations(_ context.Context, limit int) ([]Generation, error) {
	r.lastLimit = limit
	return r.recent, nil
}
