package faq

// DefaultFallbackAnswer is returned when no catalog entry matches a prompt.
const DefaultFallbackAnswer = "I couldn't find that in the FAQ yet. Try asking about finding travelers, sending packages, prohibited items, or insurance."

// Config holds runtime knobs for the FAQ chat service.
type Config struct {
	FallbackAnswer     string
	TopRecommendations int
}
