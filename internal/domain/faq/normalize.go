package faq

import "strings"

// normalize splits free text into lowercase ASCII alphanumeric tokens.
// Every rune outside [a-z0-9] becomes a separator, so punctuation and
// non-ASCII characters never survive into a token. Token order and
// duplicates are preserved.
func normalize(text string) []string {
	lowered := strings.ToLower(text)
	var builder strings.Builder
	builder.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			continue
		}
		builder.WriteRune(' ')
	}
	return strings.Fields(builder.String())
}

// canonicalPrompt collapses a prompt to its normalized token form, used as
// the aggregation key for trending counters.
func canonicalPrompt(prompt string) string {
	return strings.Join(normalize(prompt), " ")
}
