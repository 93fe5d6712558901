// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a configured biometric punch-clock device.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IPAddress    string    `gorm:"type:varchar(45);not null;default:''"`
	Port         int       `gorm:"not null;default:0"`
	Password     string    `gorm:"type:varchar(50);not null;default:''"`
	Timezone     string    `gorm:"type:varchar(64);not null"`
	IsADMS       bool      `gorm:"not null;default:false"`
	SerialNumber string    `gorm:"type:varchar(100);not null;default:'';index"`
	PollDelay    int       `gorm:"not null;default:0"`
	ErrorDelay   int       `gorm:"not null;default:0"`
	State        string    `gorm:"type:varchar(20);not null;default:'not_connected'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
