package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the role of an account
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

// VerificationStatus represents a tutor's verification state
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Valid reports whether the status is one of the known statuses.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// Account represents a participant: a student, a tutor or an admin.
//
// Credits is the account's credit balance. It is mutated only through
// the ledger service, never written directly; the balance must always
// equal the sum of the account's credit transactions.
type Account struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Role               Role
	Credits            int64
	VerificationStatus VerificationStatus

	// Tutor profile fields, nil for students and admins
	Specialty     *string
	Experience    *string
	CredentialURL *string
	Description   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVerifiedTutor reports whether the account can accept bookings.
func (a *Account) IsVerifiedTutor() bool {
	return a.Role == RoleTutor && a.VerificationStatus == VerificationVerified
}

// CanBook reports whether the account can book appointments.
func (a *Account) CanBook() bool {
	return a.Role == RoleStudent
}
