package email

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts each reply from markdown to an HTML fragment.
func RenderHTML(replies []string) ([]string, error) {
	out := make([]string, 0, len(replies))
	for _, r := range replies {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(r), &buf); err != nil {
			return nil, err
		}
		out = append(out, buf.String())
	}
	return out, nil
}
