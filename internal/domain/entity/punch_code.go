package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType is the semantic meaning assigned to a raw device status code.
type ActivityType string

const (
	// ActivityCheckIn maps a code to an interval-opening punch.
	ActivityCheckIn ActivityType = "check_in"
	// ActivityCheckOut maps a code to an interval-closing punch.
	ActivityCheckOut ActivityType = "check_out"
	// ActivityOther maps a code to a punch without attendance semantics.
	ActivityOther ActivityType = "other"
)

// PunchCodeMapping resolves a device's raw status code to an activity type.
// Codes without a mapping are treated as ActivityOther.
type PunchCodeMapping struct {
	ID        uuid.UUID    `json:"id"`
	DeviceID  uuid.UUID    `json:"device_id"`
	Name      string       `json:"name"` // Display label, e.g. "Check-In".
	Code      int          `json:"code"` // Raw status code from the device.
	Activity  ActivityType `json:"activity"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// DefaultPunchCodeMappings are seeded for a device when ADMS mode is first
// enabled and the device has no mappings yet.
func DefaultPunchCodeMappings(deviceID uuid.UUID) []*PunchCodeMapping {
	return []*PunchCodeMapping{
		{ID: uuid.New(), DeviceID: deviceID, Name: "Check-In", Code: 1, Activity: ActivityCheckIn},
		{ID: uuid.New(), DeviceID: deviceID, Name: "Check-Out", Code: 2, Activity: ActivityCheckOut},
	}
}
