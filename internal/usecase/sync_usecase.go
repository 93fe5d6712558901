package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncOutcome records the per-item result of a device synchronization pass.
// Multi-item operations collect outcomes instead of aborting on the first
// failure.
type SyncOutcome struct {
	Subject string `json:"subject"` // Employee name or device name the item acted on.
	Err     error  `json:"-"`
	Reason  string `json:"reason,omitempty"`
}

// OK reports whether the item succeeded.
func (o SyncOutcome) OK() bool {
	return o.Err == nil
}

// PullReport is the outcome of pulling one device's attendance data.
type PullReport struct {
	Device  string         `json:"device"`
	Result  *ProcessResult `json:"result,omitempty"`
	Err     error          `json:"-"`
	Reason  string         `json:"reason,omitempty"`
	Skipped bool           `json:"skipped,omitempty"` // Device not eligible for polling.
}

// SyncUsecase defines the interface for device-facing synchronization flows.
type SyncUsecase interface {
	// CheckConnection probes the device and records the observed state.
	CheckConnection(ctx context.Context, deviceID uuid.UUID) error

	// SynchronizeEmployees registers every employee missing from the device,
	// allocating fresh device-side identifiers. Per-employee failures are
	// collected in the returned outcomes.
	SynchronizeEmployees(ctx context.Context, deviceID uuid.UUID) ([]SyncOutcome, error)

	// PullAttendance connects to one device, reads its raw punches and runs
	// the reconciliation engine. Already-persisted progress is kept when the
	// pull fails partway.
	PullAttendance(ctx context.Context, deviceID uuid.UUID) (*ProcessResult, error)

	// PullAllDevices runs PullAttendance across every pollable device,
	// isolating per-device failures.
	PullAllDevices(ctx context.Context) ([]PullReport, error)

	// RegisterEmployeeOnDevices makes sure one employee exists on every
	// device, queueing an export command for ADMS devices and writing
	// directly to polled ones.
	RegisterEmployeeOnDevices(ctx context.Context, employeeID uuid.UUID) ([]SyncOutcome, error)
}

// DeviceUsecase defines the interface for device configuration management.
type DeviceUsecase interface {
	// CreateDevice registers a device configuration. Enabling ADMS seeds the
	// default punch-code mappings.
	CreateDevice(ctx context.Context, input *DeviceInput) (*entity.Device, error)

	// UpdateDevice updates a device configuration, seeding default punch-code
	// mappings when ADMS turns on.
	UpdateDevice(ctx context.Context, id uuid.UUID, input *DeviceInput) (*entity.Device, error)

	// GetDevice retrieves one device.
	GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// ListDevices retrieves all devices.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// DeleteDevice removes a device configuration.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// GetPunchCodeMappings lists a device's punch-code mappings.
	GetPunchCodeMappings(ctx context.Context, deviceID uuid.UUID) ([]*entity.PunchCodeMapping, error)
}

// DeviceInput represents device configuration supplied by the caller.
type DeviceInput struct {
	Name         string `json:"name"`
	IPAddress    string `json:"ip_address"`
	Port         int    `json:"port"`
	Password     string `json:"password"`
	Timezone     string `json:"timezone"`
	IsADMS       bool   `json:"is_adms"`
	SerialNumber string `json:"serial_number"`
	PollDelay    int    `json:"poll_delay"`
	ErrorDelay   int    `json:"error_delay"`
}
