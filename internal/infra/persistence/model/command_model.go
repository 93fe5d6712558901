package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceCommandModel is the GORM-specific struct for the 'device_commands'
// table, the queue of instructions an ADMS device fetches over HTTP.
type DeviceCommandModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(20);not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ExecutionLog string     `gorm:"type:text;not null;default:''"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid"`
	PIN          string     `gorm:"type:varchar(50);not null;default:''"`
	FailureNote  string     `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceCommandModel) TableName() string {
	return "device_commands"
}
