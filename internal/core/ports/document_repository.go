package ports

import (
	"context"

	"github.com/casetrack/case-management/internal/core/domain"
)

// DocumentRepository defines persistence operations for document metadata.
// The file bytes themselves live in the file store, not the database.
type DocumentRepository interface {
	// Create inserts a document row. Returns domain.ErrPersonNotFound when
	// the owning person no longer exists.
	Create(ctx context.Context, d *domain.Document) error
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	// ListByPerson returns the person's documents, newest upload first.
	ListByPerson(ctx context.Context, personID string) ([]*domain.Document, error)
	// Delete removes the row. Returns domain.ErrDocumentNotFound for
	// unknown ids.
	Delete(ctx context.Context, id string) error
}
