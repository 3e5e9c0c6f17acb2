package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// UserService implements the admin-only user administration operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// SetRole assigns a role to targetID. The self-change guard is separate from
// the RBAC gate: even an admin is refused when acting on their own account,
// so a lone admin can never demote themselves out of the system.
func (s *UserService) SetRole(ctx context.Context, actorID, targetID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if actorID == targetID {
		return nil, domain.ErrSelfRoleChange
	}

	user, err := s.repo.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", actorID).Str("user_id", targetID).Str("role", role).Msg("user role changed")
	return user, nil
}
