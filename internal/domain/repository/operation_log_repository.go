package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// OperationLogRepository defines the interface for device event log storage.
type OperationLogRepository interface {
	// CreateOperationLog persists a new device event.
	CreateOperationLog(ctx context.Context, log *entity.OperationLog) error

	// FindOperationLogsByDevice retrieves a device's events ordered by event
	// time descending.
	FindOperationLogsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.OperationLog, error)
}
