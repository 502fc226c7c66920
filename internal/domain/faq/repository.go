package faq

import "context"

// CatalogRepository loads FAQ entries from a backing source. It is invoked
// exactly once at startup; the built catalog never changes afterwards.
type CatalogRepository interface {
	LoadEntries(ctx context.Context) ([]Entry, error)
}
