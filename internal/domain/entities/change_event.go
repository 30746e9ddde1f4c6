package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ChangeTable identifies the record type a change notification refers to
type ChangeTable string

const (
	TableHospitals ChangeTable = "hospitals"
	TableDoctors   ChangeTable = "doctors"
)

// ChangeAction is the kind of mutation that produced a change notification
type ChangeAction string

const (
	ActionInsert ChangeAction = "insert"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// ChangeEvent is a push notification that a record of a given type was
// inserted, updated, or deleted. Consumers re-fetch on receipt; the event
// itself carries no authoritative record state.
type ChangeEvent struct {
	ID            string                 `json:"id"`
	Table         ChangeTable            `json:"table"`
	Action        ChangeAction           `json:"action"`
	HospitalID    string                 `json:"hospital_id"`
	RecordID      string                 `json:"record_id"`
	Timestamp     time.Time              `json:"timestamp"`
	ChangedFields map[string]interface{} `json:"changed_fields,omitempty"`
}

// NewChangeEvent creates a new change notification
func NewChangeEvent(table ChangeTable, action ChangeAction, hospitalID, recordID string, changedFields map[string]interface{}) *ChangeEvent {
	return &ChangeEvent{
		ID:            generateEventID(),
		Table:         table,
		Action:        action,
		HospitalID:    hospitalID,
		RecordID:      recordID,
		Timestamp:     time.Now(),
		ChangedFields: changedFields,
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
