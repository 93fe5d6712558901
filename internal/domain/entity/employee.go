package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the stable identity attendance records are reconciled against.
// It mirrors the HR system's employee master data; only the fields the
// attendance flow needs are carried here.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // Full display name.
	Code      string    `json:"code"` // HR employee code.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
