package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// StatusService is the status transition gate. Any transition between any two
// status values is legal; the only enforced rule is who may transition, and
// that is admins alone. The admin check also runs in the route middleware —
// the duplication here keeps the rule intact for any future non-HTTP caller.
type StatusService struct {
	people ports.PersonRepository
	log    zerolog.Logger
}

func NewStatusService(people ports.PersonRepository, log zerolog.Logger) *StatusService {
	return &StatusService{people: people, log: log}
}

func (s *StatusService) SetStatus(ctx context.Context, personID, status, actingRole string) (*domain.Person, error) {
	if actingRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}

	person, err := s.people.UpdateStatus(ctx, personID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("person_id", personID).Str("status", status).Msg("person status changed")
	return person, nil
}
