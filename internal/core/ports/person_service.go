package ports

import (
	"context"

	"github.com/casetrack/case-management/internal/core/domain"
)

// CreatePersonInput carries all data accepted when opening a new case record.
type CreatePersonInput struct {
	FirstName      string
	LastName       string
	MiddleName     string
	DateOfBirth    string
	Nationality    string
	PassportNumber string
	Phone          string
	Email          string
	Address        string
	Status         string
	Notes          string
}

// PersonService defines the use-case operations over case records.
type PersonService interface {
	List(ctx context.Context) ([]*domain.Person, error)
	Get(ctx context.Context, id string) (*domain.Person, error)
	Create(ctx context.Context, input CreatePersonInput) (*domain.Person, error)
	Update(ctx context.Context, id string, upd PersonUpdate) (*domain.Person, error)
	Delete(ctx context.Context, id string) error
}

// StatusService is the status transition gate: only admins may move a case
// through the workflow.
type StatusService interface {
	SetStatus(ctx context.Context, personID, status, actingRole string) (*domain.Person, error)
}
