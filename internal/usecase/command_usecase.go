package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// CommandUsecase defines the interface for the asynchronous device command
// queue. Commands move pending -> executed -> success|failed; the executed
// state is resolved by device acknowledgments arriving on the push channel.
type CommandUsecase interface {
	// QueueExportEmployee queues a DATA command registering the employee on
	// the device.
	QueueExportEmployee(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error)

	// QueueDeleteUser queues a DEL command removing the employee's
	// registration from the device.
	QueueDeleteUser(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error)

	// QueueRenameUser queues an UPDATE command renaming the employee's
	// registration on the device.
	QueueRenameUser(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error)

	// QueueUserInfoRequest queues a USERINFO command, reusing a pending one
	// when it exists.
	QueueUserInfoRequest(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceCommand, error)

	// QueueConnectionCheck queues a CHECK command, reusing a pending one when
	// it exists.
	QueueConnectionCheck(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceCommand, error)

	// FetchPending concatenates the device's pending command payloads into a
	// single response body and marks them executed.
	FetchPending(ctx context.Context, deviceID uuid.UUID) (string, error)

	// Acknowledge resolves an executed command, applying its side effect
	// (DATA upserts the device user, DEL removes it, UPDATE renames it,
	// USERINFO/CHECK just acknowledge). A failed side effect moves the
	// command to the failed state rather than leaving it executed.
	Acknowledge(ctx context.Context, commandID uuid.UUID) (*entity.DeviceCommand, error)

	// ListCommands lists a device's commands, most recent first.
	ListCommands(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceCommand, error)
}
