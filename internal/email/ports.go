package email

import (
	"context"
	"time"
)

// ReplyRequest: входящее письмо и желаемый тон.
type ReplyRequest struct {
	Content string
	Tone    string // optional
}

type Outcome string

const (
	OutcomeReplies    Outcome = "replies"
	OutcomeDiagnostic Outcome = "diagnostic"
	OutcomeFallback   Outcome = "fallback"
)

// Generation is one stored request/replies pair.
type Generation struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Tone      string    `json:"tone"`
	Replies   []string  `json:"replies"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repo stores generation history.
type Repo interface {
	EnsureSchema(ctx context.Context) error
	SaveGeneration(ctx context.Context, g *Generation) error
	RecentGenerations(ctx context.Context, limit int) ([]Generation, error)
}

// Service: оркестрация. Generate never fails and never returns an empty list.
type Service interface {
	Generate(ctx context.Context, req ReplyRequest) []string
	History(ctx context.Context, limit int) ([]Generation, error)
}
