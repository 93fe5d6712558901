// Package service defines interfaces for external collaborators the use case
// layer depends on.
package service

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
)

// DeviceClient is a stateful connection to one physical punch-clock device.
//
// A client holds a single device connection, so callers must not use one
// concurrently; independent devices get independent clients. Connect applies
// a bounded timeout and distinguishes unreachable devices (transient,
// retryable on the next poll) from rejected credentials.
type DeviceClient interface {
	// Connect establishes the device connection.
	Connect(ctx context.Context) error

	// GetUsers reads the device's user table.
	GetUsers(ctx context.Context) ([]entity.DeviceUser, error)

	// GetAttendance reads the device's raw punch records. Timestamps are in
	// the device's local timezone.
	GetAttendance(ctx context.Context) ([]entity.RawPunch, error)

	// SetUser registers or updates a user slot on the device.
	SetUser(ctx context.Context, uid int, name string, privilege int, password, card, userID string) error

	// Disconnect releases the device connection.
	Disconnect(ctx context.Context) error
}

// DeviceClientFactory builds a client for a configured device. The factory
// hides SDK construction details (protocol, timeout) from the use case layer.
type DeviceClientFactory interface {
	// NewClient returns an unconnected client for the device.
	NewClient(device *entity.Device, timeout time.Duration) DeviceClient
}
