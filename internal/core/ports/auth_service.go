package ports

import (
	"context"

	"github.com/casetrack/case-management/internal/core/domain"
)

// AuthService handles credential issuance: registration and login both mint a
// signed session token alongside the user record.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// UserService exposes the admin-only user administration operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// SetRole assigns a role to targetID on behalf of actorID. Admins may
	// never change their own role.
	SetRole(ctx context.Context, actorID, targetID, role string) (*domain.User, error)
}
