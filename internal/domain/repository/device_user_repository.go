package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceUserNotFound is returned when a device user is not found.
var ErrDeviceUserNotFound = errors.New("device user not found")

// DeviceUserRepository defines the interface for device user registrations.
type DeviceUserRepository interface {
	// CreateDeviceUser persists a new device user registration.
	CreateDeviceUser(ctx context.Context, user *entity.DeviceUser) error

	// FindDeviceUserByID retrieves a registration by its unique ID.
	FindDeviceUserByID(ctx context.Context, id uuid.UUID) (*entity.DeviceUser, error)

	// FindDeviceUsersByUserID retrieves every registration on a device that
	// carries the given textual user id. More than one row is a duplicate-id
	// condition callers must surface.
	FindDeviceUsersByUserID(ctx context.Context, deviceID uuid.UUID, userID string) ([]*entity.DeviceUser, error)

	// FindDeviceUsersByDevice retrieves all registrations on a device.
	FindDeviceUsersByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceUser, error)

	// FindDeviceUserByEmployee retrieves the registration linking an employee
	// to a device, if any.
	FindDeviceUserByEmployee(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceUser, error)

	// UpdateDeviceUser persists changes to an existing registration.
	UpdateDeviceUser(ctx context.Context, user *entity.DeviceUser) error

	// DeleteDeviceUser removes a registration by its ID.
	DeleteDeviceUser(ctx context.Context, id uuid.UUID) error
}
