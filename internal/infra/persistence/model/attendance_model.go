package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel is the GORM-specific struct for the 'attendances' table.
// CheckOut is null while the interval is open. Summary arithmetic is computed
// on demand from the interval and never stored.
type AttendanceModel struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index"`
	CheckIn    time.Time    `gorm:"type:timestamptz;not null;index"`
	CheckOut   *time.Time   `gorm:"type:timestamptz"`
	MultiShift bool         `gorm:"not null;default:false"`
	Shifts     []ShiftModel `gorm:"foreignKey:AttendanceID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendances"
}

// ShiftModel is the GORM-specific struct for the 'attendance_shifts' table,
// holding the sub-intervals of a multi-shift attendance record.
type ShiftModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AttendanceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CheckIn      time.Time  `gorm:"type:timestamptz;not null"`
	CheckOut     *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftModel) TableName() string {
	return "attendance_shifts"
}
