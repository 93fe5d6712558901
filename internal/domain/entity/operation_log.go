package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperationLog is a device event pushed through the ADMS operation-stamp
// channel (admin login, enrollment, clock changes and similar).
type OperationLog struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	OpStamp   string    `json:"op_stamp"` // Device-side stamp cursor for the OPERLOG channel.
	Code      string    `json:"code"`     // Raw operation code; also used as the description.
	Operator  string    `json:"operator"`
	OpTime    time.Time `json:"op_time"` // Normalized UTC event time.
	Value1    string    `json:"value_1"`
	Value2    string    `json:"value_2"`
	Value3    string    `json:"value_3"`
	Reserved  string    `json:"reserved"`
	CreatedAt time.Time `json:"created_at"`
}
