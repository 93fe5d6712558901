package model

import (
	"time"

	"github.com/google/uuid"
)

// OperationLogModel is the GORM-specific struct for the 'operation_logs'
// table, holding device events pushed through the ADMS operation channel.
type OperationLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OpStamp   string    `gorm:"type:varchar(50);not null;default:''"`
	Code      string    `gorm:"type:varchar(50);not null"`
	Operator  string    `gorm:"type:varchar(50);not null;default:''"`
	OpTime    time.Time `gorm:"type:timestamptz;not null;index"`
	Value1    string    `gorm:"type:varchar(100);not null;default:''"`
	Value2    string    `gorm:"type:varchar(100);not null;default:''"`
	Value3    string    `gorm:"type:varchar(100);not null;default:''"`
	Reserved  string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperationLogModel) TableName() string {
	return "operation_logs"
}
