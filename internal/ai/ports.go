package ai

import (
	"context"
	"errors"
)

// Model: внешний генератор текста, ничего не знает про письма.
type Model interface {
	Name() string
	// Send never returns a Go error: the outcome of the round-trip is in Result.
	Send(ctx context.Context, prompt string) Result
	// ReplyText pulls the generated text out of a successful payload.
	ReplyText(payload string) (string, error)
}

// MaxResponseBytes caps how much of a provider response body is read.
const MaxResponseBytes = 8 << 20

// Result is the outcome of one remote call.
type Result struct {
	Payload    string // raw response body
	StatusCode int
	Err        error // transport-level failure, no response
}

// Failed reports whether the call errored or returned a non-2xx status.
func (r Result) Failed() bool {
	return r.Err != nil || r.StatusCode < 200 || r.StatusCode > 299
}

var (
	ErrNoCandidates = errors.New("no candidates in response")
	ErrNoParts      = errors.New("candidate has no content parts")
	ErrNoText       = errors.New("content part has no text")
	ErrNoChoices    = errors.New("no choices in response")
)
