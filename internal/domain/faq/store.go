package faq

import "context"

// Store tracks prompt frequency for trending recommendations.
type Store interface {
	IncrementPrompt(ctx context.Context, canonical, display string) error
	TopPrompts(ctx context.Context, limit int) ([]TrendingPrompt, error)
}
