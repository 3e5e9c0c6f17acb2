package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
)

func TestStatusService_SetStatus(t *testing.T) {
	repo := newStubPersonRepo(testPerson("p1"))
	svc := NewStatusService(repo, zerolog.Nop())

	person, err := svc.SetStatus(context.Background(), "p1", domain.StatusApproved, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if person.Status != domain.StatusApproved {
		t.Fatalf("expected status %s, got %s", domain.StatusApproved, person.Status)
	}
	if !person.UpdatedAt.After(person.CreatedAt) {
		t.Fatalf("expected updatedAt to advance")
	}
}

func TestStatusService_SetStatus_NonAdmin(t *testing.T) {
	repo := newStubPersonRepo(testPerson("p1"))
	svc := NewStatusService(repo, zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "p1", domain.StatusApproved, domain.RoleUser); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updateStatus != 0 {
		t.Fatalf("repository reached despite forbidden caller")
	}
	if p := repo.people["p1"]; p.Status != domain.StatusNew {
		t.Fatalf("status changed to %s", p.Status)
	}
}

func TestStatusService_SetStatus_EmptyStatus(t *testing.T) {
	svc := NewStatusService(newStubPersonRepo(testPerson("p1")), zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "p1", "   ", domain.RoleAdmin); !errors.Is(err, domain.ErrEmptyStatus) {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}
}

func TestStatusService_SetStatus_PersonNotFound(t *testing.T) {
	svc := NewStatusService(newStubPersonRepo(), zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "missing", domain.StatusPending, domain.RoleAdmin); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestStatusService_SetStatus_NonWorkflowValue(t *testing.T) {
	repo := newStubPersonRepo(testPerson("p1"))
	svc := NewStatusService(repo, zerolog.Nop())

	// Any non-empty value is acceptable, not just the workflow constants.
	person, err := svc.SetStatus(context.Background(), "p1", "escalated", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if person.Status != "escalated" {
		t.Fatalf("expected status escalated, got %s", person.Status)
	}
}
