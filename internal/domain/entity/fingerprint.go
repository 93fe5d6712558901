package entity

import (
	"time"

	"github.com/google/uuid"
)

// FingerprintTemplate is a biometric template pushed by a device for one of
// its registered users. Template holds the canonical base64 encoding after
// padding repair; upserts replace the template for the same (device, user).
type FingerprintTemplate struct {
	ID           uuid.UUID `json:"id"`
	DeviceID     uuid.UUID `json:"device_id"`
	DeviceUserID uuid.UUID `json:"device_user_id"`
	Template     string    `json:"template"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
