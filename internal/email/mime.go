package email

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhillyerd/enmime"
)

var ErrEmptyMessage = errors.New("message has no text body")

// ParseRawMessage reads an RFC 822 message and returns the text the model should answer.
// HTML-only messages are converted to plain text by enmime.
func ParseRawMessage(r io.Reader) (string, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}

	body := strings.TrimSpace(env.Text)
	if body == "" {
		return "", ErrEmptyMessage
	}

	if subject := strings.TrimSpace(env.GetHeader("Subject")); subject != "" {
		return "Subject: " + subject + "\n\n" + body, nil
	}
	return body, nil
}
