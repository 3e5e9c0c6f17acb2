package domain

import (
	"errors"
	"time"
)

// Conventional workflow statuses. The store accepts any non-empty string so
// new statuses can be introduced without a migration; these constants are the
// values the clients render.
const (
	StatusNew        = "new"
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

var ErrPersonNotFound = errors.New("person not found")
var ErrMissingName = errors.New("first name and last name are required")
var ErrEmptyStatus = errors.New("status is required")

// Person is a case record: an individual tracked through the status workflow.
// Only firstName, lastName and status are mandatory.
type Person struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	MiddleName     string    `json:"middleName,omitempty"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Nationality    string    `json:"nationality,omitempty"`
	PassportNumber string    `json:"passportNumber,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
