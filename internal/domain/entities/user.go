package entities

import (
	"time"
)

// User represents an authenticated account
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Role is the coarse effective role of a session
type Role string

const (
	// RoleAdmin is bound to exactly one hospital
	RoleAdmin Role = "admin"

	// RoleUser is any authenticated account without an admin assignment
	RoleUser Role = "user"
)

// UserRole is a role-assignment row linking a user to a role and, for
// admins, a bound hospital.
type UserRole struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Role       Role      `json:"role" db:"role"`
	HospitalID *string   `json:"hospital_id,omitempty" db:"hospital_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// RoleAssignment is the resolved effective role of an identity.
// HospitalID is non-nil only for admins with a bound hospital.
type RoleAssignment struct {
	Role       Role    `json:"role"`
	HospitalID *string `json:"hospital_id,omitempty"`
}

// Identity is an authenticated caller derived from a session token
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
