package handler

import "github.com/casetrack/case-management/internal/core/ports"

// --- Request types ---

type createPersonRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName"  validate:"required"`
	MiddleName     string `json:"middleName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Status         string `json:"status" validate:"required"`
	Notes          string `json:"notes"`
}

// updatePersonRequest carries a partial update; absent fields stay nil and
// are left untouched by the store.
type updatePersonRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	MiddleName     *string `json:"middleName"`
	DateOfBirth    *string `json:"dateOfBirth"`
	Nationality    *string `json:"nationality"`
	PassportNumber *string `json:"passportNumber"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Request → Service input ---

func toCreatePersonInput(req createPersonRequest) ports.CreatePersonInput {
	return ports.CreatePersonInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		DateOfBirth:    req.DateOfBirth,
		Nationality:    req.Nationality,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		Status:         req.Status,
		Notes:          req.Notes,
	}
}

func toPersonUpdate(req updatePersonRequest) ports.PersonUpdate {
	return ports.PersonUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		DateOfBirth:    req.DateOfBirth,
		Nationality:    req.Nationality,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		Status:         req.Status,
		Notes:          req.Notes,
	}
}
