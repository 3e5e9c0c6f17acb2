package ports

import (
	"context"

	"github.com/casetrack/case-management/internal/core/domain"
)

// PersonUpdate carries a partial update: nil fields are left untouched.
type PersonUpdate struct {
	FirstName      *string
	LastName       *string
	MiddleName     *string
	DateOfBirth    *string
	Nationality    *string
	PassportNumber *string
	Phone          *string
	Email          *string
	Address        *string
	Status         *string
	Notes          *string
}

// IsEmpty reports whether the update names no fields at all, in which case an
// update call degrades to a plain read.
func (u PersonUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.MiddleName == nil &&
		u.DateOfBirth == nil && u.Nationality == nil && u.PassportNumber == nil &&
		u.Phone == nil && u.Email == nil && u.Address == nil &&
		u.Status == nil && u.Notes == nil
}

// PersonRepository defines persistence operations for case records.
type PersonRepository interface {
	// List returns all people ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Person, error)
	FindByID(ctx context.Context, id string) (*domain.Person, error)
	Create(ctx context.Context, p *domain.Person) error
	// Update applies the non-nil fields of upd and refreshes updated_at,
	// returning the resulting record. An empty update is a no-op read.
	Update(ctx context.Context, id string, upd PersonUpdate) (*domain.Person, error)
	// UpdateStatus persists a status change and refreshes updated_at.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Person, error)
	// Delete removes the person; attached documents go with it via the
	// foreign-key cascade. Returns domain.ErrPersonNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
}
