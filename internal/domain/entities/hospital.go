package entities

import (
	"time"
)

// Hospital represents a hospital facility in the system
type Hospital struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Latitude           float64   `json:"latitude" db:"latitude"`
	Longitude          float64   `json:"longitude" db:"longitude"`
	EmergencyAvailable bool      `json:"emergency_available" db:"emergency_available"`
	OTAvailable        bool      `json:"ot_available" db:"ot_available"`
	GeneralBeds        int       `json:"general_beds" db:"general_beds"`
	ACBeds             int       `json:"ac_beds" db:"ac_beds"`
	PrivateBeds        int       `json:"private_beds" db:"private_beds"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// BedCounts is the atomic bed-count update payload. All three counts are
// written together in a single record update.
type BedCounts struct {
	General int `json:"general_beds"`
	AC      int `json:"ac_beds"`
	Private int `json:"private_beds"`
}

// Valid reports whether every count is a non-negative integer.
func (b BedCounts) Valid() bool {
	return b.General >= 0 && b.AC >= 0 && b.Private >= 0
}
