package email

var fallbackReplies = [...]string{
	"Hi,\n\nThank you for your message. I have received it and will get back to you shortly.\n\nBest regards",
	"Hi,\n\nThanks for reaching out. Could you share a bit more detail so I can respond properly?\n\nBest regards",
	"Hey,\n\nThanks for the note! I'll take a look and get back to you soon.\n\nCheers",
}

// FallbackReplies returns a fresh copy of the static replies used when the model call fails.
func FallbackReplies() []string {
	out := make([]string, len(fallbackReplies))
	copy(out, fallbackReplies[:])
	return out
}
