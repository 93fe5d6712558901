package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCommandNotFound is returned when a device command is not found.
var ErrCommandNotFound = errors.New("device command not found")

// CommandRepository defines the interface for the device command queue.
type CommandRepository interface {
	// CreateCommand persists a new queued command.
	CreateCommand(ctx context.Context, command *entity.DeviceCommand) error

	// FindCommandByID retrieves a command by its unique ID.
	FindCommandByID(ctx context.Context, id uuid.UUID) (*entity.DeviceCommand, error)

	// FindPendingCommands retrieves a device's pending commands in creation
	// order.
	FindPendingCommands(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceCommand, error)

	// FindPendingCommandByName retrieves a device's pending command with the
	// given name, if one is already queued.
	FindPendingCommandByName(ctx context.Context, deviceID uuid.UUID, name entity.CommandName) (*entity.DeviceCommand, error)

	// FindCommandsByDevice retrieves a device's commands ordered by creation
	// descending.
	FindCommandsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceCommand, error)

	// UpdateCommand persists changes to an existing command.
	UpdateCommand(ctx context.Context, command *entity.DeviceCommand) error
}
