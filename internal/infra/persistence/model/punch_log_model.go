package model

import (
	"time"

	"github.com/google/uuid"
)

// PunchLogModel is the GORM-specific struct for the 'punch_logs' table.
// The (device_user_id, punch_time) pair is unique: re-ingesting the same
// punch merges into the existing row instead of inserting a duplicate.
type PunchLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceUserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_punch_logs_user_time"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;index"`
	PunchTime    time.Time  `gorm:"type:timestamptz;not null;uniqueIndex:idx_punch_logs_user_time"`
	Status       string     `gorm:"type:varchar(20);not null"`
	Code         int        `gorm:"not null;default:0"`
	Number       string     `gorm:"type:varchar(50);not null;default:''"`
	Sequence     int        `gorm:"not null;default:0"`
	DeviceName   string     `gorm:"type:varchar(255);not null;default:''"`
	Calculated   bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PunchLogModel) TableName() string {
	return "punch_logs"
}
