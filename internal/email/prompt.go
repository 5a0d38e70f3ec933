package email

import "strings"

// BuildPrompt turns a request into the instruction sent to the model.
func BuildPrompt(req ReplyRequest) string {
	var b strings.Builder
	b.WriteString("Generate exactly three separate email reply options for the following message. ")
	b.WriteString("Each reply should be in a different tone: Simple, Inquiring, and Casual. ")
	b.WriteString("Return the replies as a JSON array of strings. ")
	b.WriteString("Each string should be a complete, ready-to-send email reply including greeting, body, and closing. ")
	b.WriteString("Use natural email formatting like 'Hi', 'Thank you', 'Best regards'. ")
	b.WriteString("Do not include subject lines or titles. ")
	if tone := strings.TrimSpace(req.Tone); tone != "" {
		b.WriteString("Prioritize a ")
		b.WriteString(tone)
		b.WriteString(" tone over the three default tones. ")
	}
	b.WriteString("\nOriginal email:\n")
	b.WriteString(req.Content)
	return b.String()
}
