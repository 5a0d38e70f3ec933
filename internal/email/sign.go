package email

import "strings"

const namePlaceholder = "[Your Name]"

// SignReplies fills the name placeholder models tend to leave in closings.
func SignReplies(replies []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return replies
	}

	out := make([]string, len(replies))
	for i, r := range replies {
		out[i] = strings.ReplaceAll(r, namePlaceholder, name)
	}
	return out
}
