package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrForbidden = errors.New("admin access required")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrInvalidRole = errors.New("role must be either user or admin")
var ErrSelfRoleChange = errors.New("cannot change your own role")
var ErrUsernameLength = errors.New("username must be between 3 and 30 characters")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// ValidRole reports whether r is one of the two assignable roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an authenticated actor. The password hash never leaves the
// server: it is excluded from JSON and from the admin user listings.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
