package entity

import (
	"time"

	"github.com/google/uuid"
)

// PunchStatus is the inferred semantics of a punch event.
type PunchStatus string

const (
	// PunchStatusCheckIn opens an attendance interval.
	PunchStatusCheckIn PunchStatus = "check_in"
	// PunchStatusCheckOut closes an attendance interval.
	PunchStatusCheckOut PunchStatus = "check_out"
	// PunchStatusPunched marks a stale or duplicate punch that did not
	// mutate any attendance interval.
	PunchStatusPunched PunchStatus = "punched"
)

// RawPunch is a punch event exactly as a device reported it, before timezone
// normalization and status inference. It is ephemeral and never persisted.
type RawPunch struct {
	UserID    string    // Textual device user identifier.
	Timestamp time.Time // Wall-clock time in the device's local timezone.
	Code      int       // Raw status code from the device.
	Number    string    // Device-side record number, informational.
	Sequence  int       // Monotonic ingestion order, tie-break for equal timestamps.
}

// PunchLog is a persisted, normalized punch event.
//
// At most one PunchLog exists per (device user, UTC timestamp); re-ingesting
// the same punch merges into the existing row. Once Calculated is set the row
// is consumed by attendance computation and can no longer be deleted.
type PunchLog struct {
	ID           uuid.UUID   `json:"id"`
	DeviceUserID uuid.UUID   `json:"device_user_id"`
	EmployeeID   *uuid.UUID  `json:"employee_id"` // Denormalized from the device user link.
	PunchTime    time.Time   `json:"punch_time"`  // Normalized UTC punch time.
	Status       PunchStatus `json:"status"`
	Code         int         `json:"code"`     // Raw status code from the device.
	Number       string      `json:"number"`   // Device-side record number.
	Sequence     int         `json:"sequence"` // Ingestion order within the punch's pull cycle.
	DeviceName   string      `json:"device_name"`
	Calculated   bool        `json:"calculated"` // Consumed by attendance computation; guards deletion.
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
