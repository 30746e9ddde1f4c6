package entities

import (
	"time"
)

// DoctorStatus is the on-duty state of a doctor
type DoctorStatus string

const (
	// DoctorStatusAvailable means the doctor is currently on duty
	DoctorStatusAvailable DoctorStatus = "available"

	// DoctorStatusUpcoming means the doctor's shift has not started yet
	DoctorStatusUpcoming DoctorStatus = "upcoming"
)

// Valid reports whether s is a known status value
func (s DoctorStatus) Valid() bool {
	return s == DoctorStatusAvailable || s == DoctorStatusUpcoming
}

// Doctor represents a staff record scoped to one hospital. Shift boundaries
// are opaque display labels ("9:00 AM"), never parsed.
type Doctor struct {
	ID         string       `json:"id" db:"id"`
	HospitalID string       `json:"hospital_id" db:"hospital_id"`
	Name       string       `json:"name" db:"name"`
	ShiftStart string       `json:"shift_start" db:"shift_start"`
	ShiftEnd   string       `json:"shift_end" db:"shift_end"`
	Status     DoctorStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}
