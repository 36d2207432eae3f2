package entity

import (
	"strings"
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
)

// Role represents a user's access level
type Role string

// Roles. There is exactly one admin flag in the system: the role field.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an identity record holding the credentials and the
// account number used as an alternate lookup key for transfers
type User struct {
	ID            uint64
	FullName      string
	Email         string // always stored lowercased
	PasswordHash  string
	Phone         string
	AccountNumber string // unique 10-digit string
	Role          Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new user with the ordinary role. The email is
// normalized to lowercase so lookups are case-insensitive.
func NewUser(fullName, email, passwordHash, phone, accountNumber string, timeProvider coreport.TimeProvider) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))

	if fullName == "" {
		return nil, errs.ErrInvalidUserData
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidUserData
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidUserData
	}
	if accountNumber == "" {
		return nil, errs.ErrInvalidUserData
	}

	now := timeProvider.Now()
	return &User{
		FullName:      fullName,
		Email:         email,
		PasswordHash:  passwordHash,
		Phone:         phone,
		AccountNumber: accountNumber,
		Role:          RoleUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsAdmin is the single canonical admin check
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
