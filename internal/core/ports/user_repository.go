package ports

import (
	"context"

	"github.com/casetrack/case-management/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) error
	// FindByUsername does an exact, case-sensitive lookup.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Count returns the total number of registered users. The very first
	// registration is promoted to admin based on this count.
	Count(ctx context.Context) (int64, error)
	// List returns all users ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the role of the given user and returns the updated
	// record. Returns domain.ErrUserNotFound for an unknown id.
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
