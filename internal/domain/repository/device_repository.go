// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device configuration.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceBySerial retrieves a device by the serial number it reports
	// during the ADMS handshake.
	FindDeviceBySerial(ctx context.Context, serialNumber string) (*entity.Device, error)

	// FindAllDevices retrieves every configured device.
	FindAllDevices(ctx context.Context) ([]*entity.Device, error)

	// FindPollableDevices retrieves devices that are polled directly
	// (ADMS mode disabled).
	FindPollableDevices(ctx context.Context) ([]*entity.Device, error)

	// UpdateDevice persists changes to an existing device.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// UpdateDeviceState records the last observed connection state.
	UpdateDeviceState(ctx context.Context, id uuid.UUID, state entity.DeviceState) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
