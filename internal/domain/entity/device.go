// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceState represents the connection state of a biometric device.
type DeviceState string

const (
	// DeviceStateNotConnected means the device has not been reached yet.
	DeviceStateNotConnected DeviceState = "not_connected"
	// DeviceStateConnected means the last connection check succeeded.
	DeviceStateConnected DeviceState = "connected"
)

// Device represents a physical biometric punch-clock device.
type Device struct {
	ID           uuid.UUID   `json:"id"`            // The unique identifier of the device record.
	Name         string      `json:"name"`          // Human-readable name stamped on punch logs.
	IPAddress    string      `json:"ip_address"`    // IP address used for direct (pull) connections.
	Port         int         `json:"port"`          // Network port of the device.
	Password     string      `json:"password"`      // Numeric device password, empty when unset.
	Timezone     string      `json:"timezone"`      // IANA timezone the device clock runs in.
	IsADMS       bool        `json:"is_adms"`       // True when the device pushes data (ADMS mode) instead of being polled.
	SerialNumber string      `json:"serial_number"` // Serial number reported during the ADMS handshake.
	PollDelay    int         `json:"poll_delay"`    // Seconds between poll cycles.
	ErrorDelay   int         `json:"error_delay"`   // Seconds to back off after a failed poll.
	State        DeviceState `json:"state"`         // Last observed connection state.
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DeviceUser is an identity registered on a physical device.
//
// The textual UserID is what the device stamps on punch records; the numeric
// UID is the storage slot on the device itself. A DeviceUser may exist without
// an employee link when the device pushes punches for an unknown identity.
type DeviceUser struct {
	ID         uuid.UUID  `json:"id"`
	DeviceID   uuid.UUID  `json:"device_id"`   // The device this registration belongs to.
	UID        int        `json:"uid"`         // Numeric user slot on the device.
	UserID     string     `json:"user_id"`     // Textual identifier stamped on punch records.
	Name       string     `json:"name"`        // Display name stored on the device.
	EmployeeID *uuid.UUID `json:"employee_id"` // Linked employee, nil for unclaimed device identities.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
