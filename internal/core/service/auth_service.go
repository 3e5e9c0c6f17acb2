package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// AuthService implements registration, login, and token issuance.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates an account and returns a freshly minted token. The first
// account ever created becomes admin; everyone after that starts as a regular
// user.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if n := len(username); n < 3 || n > 30 {
		return "", nil, domain.ErrUsernameLength
	}
	if len(password) < 6 {
		return "", nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return "", nil, err
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return token, user, nil
}

// Login verifies credentials and mints a token. An unknown username and a
// wrong password produce the same error so the response never reveals which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// issueToken signs a 24h HS256 session token carrying the user's identity.
// There is no refresh and no server-side revocation: expiry is the only exit.
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
