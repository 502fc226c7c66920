package faq

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/orbislinks/faq-chat/pkg/errors"
)

// Service exposes FAQ chat capabilities.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingPrompt, error)
}

type service struct {
	cfg     Config
	catalog *Catalog
	store   Store
	logger  *slog.Logger
}

// NewService wires up the FAQ chat domain.
func NewService(cfg Config, catalog *Catalog, store Store, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.FallbackAnswer) == "" {
		cfg.FallbackAnswer = DefaultFallbackAnswer
	}
	return &service{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		logger:  logger.With("component", "faq.service"),
	}
}

// Answer resolves one prompt against the catalog. A prompt that matches no
// entry is normal-path behavior and yields the fallback answer; prompt
// validation is the transport's job, so any string is tolerated here.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	answer := s.cfg.FallbackAnswer
	if entry, ok := s.catalog.FindBestAnswer(req.Prompt); ok {
		answer = entry.Answer
	}

	if canonical := canonicalPrompt(req.Prompt); canonical != "" {
		if err := s.store.IncrementPrompt(ctx, canonical, strings.TrimSpace(req.Prompt)); err != nil {
			s.logger.Warn("faq trending increment failed", "error", err)
		}
	}

	return Response{Answer: answer}, nil
}

// Trending returns the most frequently asked prompts.
func (s *service) Trending(ctx context.Context) ([]TrendingPrompt, error) {
	items, err := s.store.TopPrompts(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap("faq_error", "failed to load trending prompts", err)
	}
	return items, nil
}
