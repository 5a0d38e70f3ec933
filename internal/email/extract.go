package email

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Vovarama1992/email-reply-writer/internal/ai"
)

const fence = "```"

var (
	errEmptyText = errors.New("model returned empty text")
	errNoReplies = errors.New("model returned an empty reply array")
)

// ExtractReplies decodes a successful model payload into replies.
// Any decode problem becomes a single diagnostic reply instead of an error.
func ExtractReplies(m ai.Model, payload string) []string {
	replies, err := extractReplies(m, payload)
	if err != nil {
		return []string{diagnostic(m, err)}
	}
	return replies
}

func extractReplies(m ai.Model, payload string) ([]string, error) {
	text, err := m.ReplyText(payload)
	if err != nil {
		return nil, err
	}
	return decodeReplies(text)
}

func diagnostic(m ai.Model, err error) string {
	return fmt.Sprintf("Error parsing %s response: %v", m.Name(), err)
}

// StripFence removes a markdown code fence wrapped around the text.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	nl := strings.IndexByte(text, '\n')
	if nl < 0 {
		// ```["a"]``` на одной строке
		text = strings.TrimLeft(text, "`")
		text = strings.TrimRight(text, "`")
		return strings.TrimSpace(text)
	}

	text = text[nl+1:]
	if i := strings.LastIndex(text, fence); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

func decodeReplies(text string) ([]string, error) {
	cleaned := StripFence(text)
	if cleaned == "" {
		return nil, errEmptyText
	}

	var items []json.RawMessage
	if cleaned[0] != '[' || json.Unmarshal([]byte(cleaned), &items) != nil {
		// not an array (or not JSON at all): the whole text is one reply
		return []string{cleaned}, nil
	}
	if len(items) == 0 {
		return nil, errNoReplies
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, elementText(item))
	}
	return out, nil
}

func elementText(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
