package faqrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
)

// PostgresRepository loads the catalog from a faq_entries table using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadEntries implements faq.CatalogRepository. Entries come back in their
// curated position order; that order is the matcher's tie-break.
func (r *PostgresRepository) LoadEntries(ctx context.Context) ([]faq.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question, answer, keywords
		FROM faq_entries
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []faq.Entry
	for rows.Next() {
		var entry faq.Entry
		if err := rows.Scan(&entry.Question, &entry.Answer, &entry.Keywords); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

var _ faq.CatalogRepository = (*PostgresRepository)(nil)
