package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

type stubUserRepo struct {
	users []*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users = append(r.users, cloneUser(user))
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

var _ ports.UserRepository = (*stubUserRepo)(nil)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_FirstUserIsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, alice, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if alice.Role != domain.RoleAdmin {
		t.Fatalf("expected first user to be admin, got %s", alice.Role)
	}

	_, bob, err := svc.Register(context.Background(), "bob", "secret2")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if bob.Role != domain.RoleUser {
		t.Fatalf("expected second user to be user, got %s", bob.Role)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, user, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "ab", "secret1"); !errors.Is(err, domain.ErrUsernameLength) {
		t.Fatalf("expected ErrUsernameLength for short username, got %v", err)
	}
	long := make([]byte, 31)
	for i := range long {
		long[i] = 'a'
	}
	if _, _, err := svc.Register(context.Background(), string(long), "secret1"); !errors.Is(err, domain.ErrUsernameLength) {
		t.Fatalf("expected ErrUsernameLength for long username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "short"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "other-password"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_TokenRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Fatalf("expected sub %q, got %v", registered.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "alice", "wrong-password")
	_, _, unknownUser := svc.Login(context.Background(), "ghost", "secret1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	// Same error value for both causes: no account-existence leak.
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failures are distinguishable: %q vs %q", wrongPass, unknownUser)
	}
}
