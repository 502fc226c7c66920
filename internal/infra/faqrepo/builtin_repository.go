package faqrepo

import (
	"context"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
)

// BuiltinRepository serves the compiled-in catalog data.
type BuiltinRepository struct{}

// NewBuiltinRepository constructs the default catalog source.
func NewBuiltinRepository() *BuiltinRepository {
	return &BuiltinRepository{}
}

// LoadEntries implements faq.CatalogRepository.
func (r *BuiltinRepository) LoadEntries(_ context.Context) ([]faq.Entry, error) {
	return faq.DefaultEntries(), nil
}

var _ faq.CatalogRepository = (*BuiltinRepository)(nil)
