package model

import (
	"time"

	"github.com/google/uuid"
)

// FingerprintTemplateModel is the GORM-specific struct for the
// 'fingerprint_templates' table. A device user holds at most one template per
// device; pushes for the same pair replace the stored template.
type FingerprintTemplateModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fingerprint_templates_device_user"`
	DeviceUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fingerprint_templates_device_user"`
	Template     string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FingerprintTemplateModel) TableName() string {
	return "fingerprint_templates"
}
