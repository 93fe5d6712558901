package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceUserModel is the GORM-specific struct for the 'device_users' table.
// It represents an identity registered on a physical device; EmployeeID is
// null for device identities no employee has claimed yet.
type DeviceUserModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_device_users_device_user_id"`
	UID        int        `gorm:"not null"`
	UserID     string     `gorm:"type:varchar(50);not null;index:idx_device_users_device_user_id"`
	Name       string     `gorm:"type:varchar(255);not null;default:''"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceUserModel) TableName() string {
	return "device_users"
}
