package model

import (
	"time"

	"github.com/google/uuid"
)

// PunchCodeMappingModel is the GORM-specific struct for the
// 'punch_code_mappings' table. Each row resolves one raw device status code
// to an activity type; a device maps each code at most once.
type PunchCodeMappingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_punch_code_mappings_device_code"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Code      int       `gorm:"not null;uniqueIndex:idx_punch_code_mappings_device_code"`
	Activity  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PunchCodeMappingModel) TableName() string {
	return "punch_code_mappings"
}
