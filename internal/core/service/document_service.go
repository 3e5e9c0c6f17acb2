package service

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// FileStore abstracts where document bytes live (local disk in production).
type FileStore interface {
	// Save writes the file under the given storage name.
	Save(name string, r io.Reader) error
	// Remove deletes the file; removing a missing file is not an error.
	Remove(name string) error
	// Path resolves a storage name to an absolute filesystem path.
	Path(name string) (string, error)
}

// DocumentService implements upload, listing, and deletion of attached
// documents. Metadata lives in the database, bytes in the FileStore.
type DocumentService struct {
	docs   ports.DocumentRepository
	people ports.PersonRepository
	files  FileStore
	log    zerolog.Logger
}

func NewDocumentService(docs ports.DocumentRepository, people ports.PersonRepository, files FileStore, log zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, people: people, files: files, log: log}
}

func (s *DocumentService) ListByPerson(ctx context.Context, personID string) ([]*domain.Document, error) {
	return s.docs.ListByPerson(ctx, personID)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docs.FindByID(ctx, id)
}

// Upload validates the file, writes it, and commits the document row.
// Validation and the person-existence check come before the write, so a
// rejected upload leaves nothing on disk; if the row insert fails after the
// write, the file is unlinked best-effort.
func (s *DocumentService) Upload(ctx context.Context, input ports.UploadInput) (*domain.Document, error) {
	if input.Size > domain.MaxUploadSize {
		return nil, domain.ErrFileTooLarge
	}
	if !domain.AllowedUpload(input.OriginalName, input.MimeType) {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := s.people.FindByID(ctx, input.PersonID); err != nil {
		return nil, err
	}

	// filepath.Base strips any path the client smuggled into the name.
	originalName := filepath.Base(input.OriginalName)
	fileName := uuid.NewString() + "-" + originalName

	if err := s.files.Save(fileName, input.Content); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:           uuid.NewString(),
		PersonID:     input.PersonID,
		FileName:     fileName,
		OriginalName: originalName,
		MimeType:     input.MimeType,
		Size:         input.Size,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		if rmErr := s.files.Remove(fileName); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("file", fileName).Msg("failed to clean up orphaned upload")
		}
		return nil, err
	}

	s.log.Info().Str("document_id", doc.ID).Str("person_id", doc.PersonID).Int64("size", doc.Size).Msg("document uploaded")
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.files.Remove(doc.FileName); err != nil {
		s.log.Warn().Err(err).Str("file", doc.FileName).Msg("failed to remove document file")
	}

	s.log.Info().Str("document_id", id).Msg("document deleted")
	return nil
}
