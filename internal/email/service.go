package email

import (
	"context"
	"log"
	"runtime/debug"

	"github.com/Vovarama1992/email-reply-writer/internal/ai"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type service struct {
	repo  Repo
	model ai.Model
}

// NewService wires the model backend and an optional history repo (nil disables history).
func NewService(repo Repo, model ai.Model) Service {
	if repo == nil {
		repo = nopRepo{}
	}
	return &service{
		repo:  repo,
		model: model,
	}
}

func (s *service) Generate(ctx context.Context, req ReplyRequest) []string {
	replies, outcome := s.generate(ctx, req)

	s.save(ctx, &Generation{
		Content: req.Content,
		Tone:    req.Tone,
		Replies: replies,
		Outcome: outcome,
	})

	return replies
}

func (s *service) generate(ctx context.Context, req ReplyRequest) (replies []string, outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[email] generation panic: %v\n%s", r, debug.Stack())
			replies, outcome = FallbackReplies(), OutcomeFallback
		}
	}()

	prompt := BuildPrompt(req)
	res := s.model.Send(ctx, prompt)

	if res.Failed() {
		if res.Err != nil {
			log.Printf("[email] %s call error: %v", s.model.Name(), res.Err)
		} else {
			log.Printf("[email] %s error status: %d", s.model.Name(), res.StatusCode)
			log.Printf("[email] %s error body: %s", s.model.Name(), res.Payload)
		}
		return FallbackReplies(), OutcomeFallback
	}

	log.Printf("[email] %s raw response: %s", s.model.Name(), res.Payload)

	replies, err := extractReplies(s.model, res.Payload)
	if err != nil {
		log.Printf("[email] %s parse error: %v", s.model.Name(), err)
		return []string{diagnostic(s.model, err)}, OutcomeDiagnostic
	}

	return replies, OutcomeReplies
}

// save пишет историю, ошибки только логируются.
func (s *service) save(ctx context.Context, g *Generation) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[repo] save panic: %v", r)
		}
	}()

	if err := s.repo.SaveGeneration(ctx, g); err != nil {
		log.Printf("[repo] save generation: %v", err)
	}
}

func (s *service) History(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.RecentGenerations(ctx, limit)
}
