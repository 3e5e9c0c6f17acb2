package ports

import (
	"context"
	"io"

	"github.com/casetrack/case-management/internal/core/domain"
)

// UploadInput carries an incoming multipart upload.
type UploadInput struct {
	PersonID     string
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// DocumentService defines the use-case operations over attached documents.
type DocumentService interface {
	ListByPerson(ctx context.Context, personID string) ([]*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	// Upload validates size and type, writes the file, and records the
	// document. The file is unlinked best-effort when the record cannot be
	// committed, so failures never leave orphans behind.
	Upload(ctx context.Context, input UploadInput) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
}
