package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casetrack/case-management/internal/core/domain"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (id, person_id, file_name, original_name, mime_type, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, d.ID, d.PersonID, d.FileName, d.OriginalName, d.MimeType, d.Size, d.UploadedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// The owning person can vanish between the existence check and this
		// insert; surface that race as a not-found, not an internal error.
		if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
			return domain.ErrPersonNotFound
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, person_id, file_name, original_name, mime_type, size, uploaded_at
		FROM documents
		WHERE id = $1
	`, id)
	return scanDocument(row)
}

func (r *DocumentRepository) ListByPerson(ctx context.Context, personID string) ([]*domain.Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, person_id, file_name, original_name, mime_type, size, uploaded_at
		FROM documents
		WHERE person_id = $1
		ORDER BY uploaded_at DESC
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.PersonID, &d.FileName, &d.OriginalName, &d.MimeType, &d.Size, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(&d.ID, &d.PersonID, &d.FileName, &d.OriginalName, &d.MimeType, &d.Size, &d.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}
