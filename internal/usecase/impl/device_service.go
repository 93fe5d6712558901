package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo    repository.DeviceRepository
	punchCodeRepo repository.PunchCodeRepository
	logger        *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	punchCodeRepo repository.PunchCodeRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:    deviceRepo,
		punchCodeRepo: punchCodeRepo,
		logger:        logger,
	}
}

// CreateDevice registers a device configuration. Enabling ADMS seeds the
// default punch-code mappings so pushed records resolve without manual setup.
func (srv *deviceService) CreateDevice(ctx context.Context, input *usecase.DeviceInput) (*entity.Device, error) {
	if err := validateDeviceInput(input); err != nil {
		return nil, err
	}

	device := &entity.Device{
		ID:           uuid.New(),
		Name:         input.Name,
		IPAddress:    input.IPAddress,
		Port:         input.Port,
		Password:     input.Password,
		Timezone:     input.Timezone,
		IsADMS:       input.IsADMS,
		SerialNumber: input.SerialNumber,
		PollDelay:    input.PollDelay,
		ErrorDelay:   input.ErrorDelay,
		State:        entity.DeviceStateNotConnected,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "a device with this name or serial already exists")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	if device.IsADMS {
		if err := srv.seedDefaultMappings(ctx, device.ID); err != nil {
			return nil, err
		}
	}
	srv.logger.Info("Device created", "device", device.Name, "adms", device.IsADMS)

	return device, nil
}

// UpdateDevice updates a device configuration, seeding default punch-code
// mappings when ADMS turns on.
func (srv *deviceService) UpdateDevice(ctx context.Context, id uuid.UUID, input *usecase.DeviceInput) (*entity.Device, error) {
	if err := validateDeviceInput(input); err != nil {
		return nil, err
	}

	device, err := srv.findDevice(ctx, id)
	if err != nil {
		return nil, err
	}

	admsTurnedOn := input.IsADMS && !device.IsADMS

	device.Name = input.Name
	device.IPAddress = input.IPAddress
	device.Port = input.Port
	device.Password = input.Password
	device.Timezone = input.Timezone
	device.IsADMS = input.IsADMS
	device.SerialNumber = input.SerialNumber
	device.PollDelay = input.PollDelay
	device.ErrorDelay = input.ErrorDelay

	if err := srv.deviceRepo.UpdateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "a device with this name or serial already exists")
		}

		return nil, errors.Wrap(err, "failed to update device")
	}

	if admsTurnedOn {
		if err := srv.seedDefaultMappings(ctx, device.ID); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// GetDevice retrieves one device.
func (srv *deviceService) GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return srv.findDevice(ctx, id)
}

// ListDevices retrieves all devices.
func (srv *deviceService) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindAllDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeleteDevice removes a device configuration.
func (srv *deviceService) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	if err := srv.deviceRepo.DeleteDevice(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// GetPunchCodeMappings lists a device's punch-code mappings.
func (srv *deviceService) GetPunchCodeMappings(ctx context.Context, deviceID uuid.UUID) ([]*entity.PunchCodeMapping, error) {
	mappings, err := srv.punchCodeRepo.FindMappingsByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list punch-code mappings")
	}

	return mappings, nil
}

// seedDefaultMappings inserts the default code table unless the device
// already carries mappings, so re-enabling ADMS never duplicates rows.
func (srv *deviceService) seedDefaultMappings(ctx context.Context, deviceID uuid.UUID) error {
	existing, err := srv.punchCodeRepo.FindMappingsByDevice(ctx, deviceID)
	if err != nil {
		return errors.Wrap(err, "failed to check punch-code mappings")
	}
	if len(existing) > 0 {
		return nil
	}

	for _, mapping := range entity.DefaultPunchCodeMappings(deviceID) {
		if err := srv.punchCodeRepo.CreateMapping(ctx, mapping); err != nil {
			return errors.Wrap(err, "failed to seed punch-code mapping")
		}
	}

	return nil
}

func (srv *deviceService) findDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// validateDeviceInput checks the semantic constraints binding cannot: the
// timezone must resolve, ADMS devices need a serial to hand-shake with and
// polled devices need an address to dial.
func validateDeviceInput(input *usecase.DeviceInput) error {
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed,
			fmt.Sprintf("unknown timezone %q", input.Timezone))
	}

	if input.IsADMS {
		if input.SerialNumber == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "ADMS devices require a serial number")
		}

		return nil
	}

	if input.IPAddress == "" || input.Port <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "polled devices require an IP address and port")
	}

	return nil
}
