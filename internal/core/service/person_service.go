package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// PersonService implements CRUD over case records. Deleting a person also
// sweeps the files of its cascaded documents off disk.
type PersonService struct {
	people ports.PersonRepository
	docs   ports.DocumentRepository
	files  FileStore
	log    zerolog.Logger
}

func NewPersonService(people ports.PersonRepository, docs ports.DocumentRepository, files FileStore, log zerolog.Logger) *PersonService {
	return &PersonService{people: people, docs: docs, files: files, log: log}
}

func (s *PersonService) List(ctx context.Context) ([]*domain.Person, error) {
	return s.people.List(ctx)
}

func (s *PersonService) Get(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.FindByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, input ports.CreatePersonInput) (*domain.Person, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, domain.ErrMissingName
	}
	if strings.TrimSpace(input.Status) == "" {
		return nil, domain.ErrEmptyStatus
	}

	now := time.Now().UTC()
	person := &domain.Person{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		MiddleName:     input.MiddleName,
		DateOfBirth:    input.DateOfBirth,
		Nationality:    input.Nationality,
		PassportNumber: input.PassportNumber,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		Status:         strings.TrimSpace(input.Status),
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.people.Create(ctx, person); err != nil {
		return nil, err
	}

	s.log.Info().Str("person_id", person.ID).Str("status", person.Status).Msg("person created")
	return person, nil
}

// Update applies a partial update: only the fields present in upd change, and
// an update naming no fields at all is just a read.
func (s *PersonService) Update(ctx context.Context, id string, upd ports.PersonUpdate) (*domain.Person, error) {
	person, err := s.people.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if !upd.IsEmpty() {
		s.log.Info().Str("person_id", id).Msg("person updated")
	}
	return person, nil
}

// Delete removes the person. Document rows go with the cascade; their files
// are unlinked best-effort afterwards so the uploads directory does not
// accumulate orphans.
func (s *PersonService) Delete(ctx context.Context, id string) error {
	docs, err := s.docs.ListByPerson(ctx, id)
	if err != nil {
		return err
	}

	if err := s.people.Delete(ctx, id); err != nil {
		return err
	}

	for _, d := range docs {
		if err := s.files.Remove(d.FileName); err != nil {
			s.log.Warn().Err(err).Str("file", d.FileName).Msg("failed to remove document file")
		}
	}

	s.log.Info().Str("person_id", id).Int("documents", len(docs)).Msg("person deleted")
	return nil
}
