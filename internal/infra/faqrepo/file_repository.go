package faqrepo

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
)

// FileRepository reads the catalog from a YAML file so operators can edit
// FAQ content without a rebuild.
type FileRepository struct {
	path string
}

// NewFileRepository constructs a catalog source backed by a YAML file.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// LoadEntries implements faq.CatalogRepository.
func (r *FileRepository) LoadEntries(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var doc struct {
		Entries []faq.Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return doc.Entries, nil
}

var _ faq.CatalogRepository = (*FileRepository)(nil)
