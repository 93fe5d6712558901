package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	fx.In

	txManager         repository.TransactionManager
	deviceRepo        repository.DeviceRepository
	deviceUserRepo    repository.DeviceUserRepository
	employeeRepo      repository.EmployeeRepository
	clientFactory     service.DeviceClientFactory
	attendanceUsecase usecase.AttendanceUsecase
	commandUsecase    usecase.CommandUsecase
	connectTimeout    time.Duration
	multiShift        bool
	standardHours     float64
	logger            *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	deviceRepo repository.DeviceRepository,
	deviceUserRepo repository.DeviceUserRepository,
	employeeRepo repository.EmployeeRepository,
	clientFactory service.DeviceClientFactory,
	attendanceUsecase usecase.AttendanceUsecase,
	commandUsecase usecase.CommandUsecase,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		txManager:         txManager,
		deviceRepo:        deviceRepo,
		deviceUserRepo:    deviceUserRepo,
		employeeRepo:      employeeRepo,
		clientFactory:     clientFactory,
		attendanceUsecase: attendanceUsecase,
		commandUsecase:    commandUsecase,
		connectTimeout:    cfg.Device.ConnectTimeout,
		multiShift:        cfg.Attendance.MultipleShift,
		standardHours:     cfg.Attendance.StandardWorkingHours,
		logger:            logger,
	}
}

// processOptions snapshots the reconciliation settings for one operation.
func (srv *syncService) processOptions() usecase.ProcessOptions {
	return usecase.ProcessOptions{
		MultiShift:           srv.multiShift,
		StandardWorkingHours: srv.standardHours,
	}
}

// CheckConnection probes the device and records the observed state. ADMS
// devices cannot be dialed, so the probe is queued for the device to fetch on
// its next poll instead.
func (srv *syncService) CheckConnection(ctx context.Context, deviceID uuid.UUID) error {
	device, err := srv.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	if device.IsADMS {
		if _, err := srv.commandUsecase.QueueConnectionCheck(ctx, device.ID); err != nil {
			return errors.Wrap(err, "failed to queue connection check")
		}

		return nil
	}

	client := srv.clientFactory.NewClient(device, srv.connectTimeout)
	if err := client.Connect(ctx); err != nil {
		srv.markState(ctx, device, entity.DeviceStateNotConnected)

		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	srv.markState(ctx, device, entity.DeviceStateConnected)
	srv.logger.Info("Device connection check succeeded", "device", device.Name)

	return nil
}

// SynchronizeEmployees registers every employee missing from the device. The
// allocator is seeded from the device's own user table so freshly assigned
// identifiers can never collide with slots the device already holds.
func (srv *syncService) SynchronizeEmployees(ctx context.Context, deviceID uuid.UUID) ([]usecase.SyncOutcome, error) {
	device, err := srv.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	missing, err := srv.employeeRepo.FindEmployeesWithoutDeviceUser(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find unregistered employees")
	}
	if len(missing) == 0 {
		return nil, nil
	}

	if device.IsADMS {
		outcomes := make([]usecase.SyncOutcome, 0, len(missing))
		for _, employee := range missing {
			outcome := usecase.SyncOutcome{Subject: employee.Name}
			if _, err := srv.commandUsecase.QueueExportEmployee(ctx, device.ID, employee.ID); err != nil {
				outcome.Err = err
				outcome.Reason = err.Error()
			}
			outcomes = append(outcomes, outcome)
		}

		return outcomes, nil
	}

	client := srv.clientFactory.NewClient(device, srv.connectTimeout)
	if err := client.Connect(ctx); err != nil {
		srv.markState(ctx, device, entity.DeviceStateNotConnected)

		return nil, err
	}
	defer func() { _ = client.Disconnect(ctx) }()
	srv.markState(ctx, device, entity.DeviceStateConnected)

	deviceUsers, err := client.GetUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read device user table")
	}
	allocator := newIdentifierAllocator(deviceUsers)

	outcomes := make([]usecase.SyncOutcome, 0, len(missing))
	for _, employee := range missing {
		outcome := usecase.SyncOutcome{Subject: employee.Name}
		if err := srv.registerEmployee(ctx, client, device, employee, allocator); err != nil {
			srv.logger.Warn("Employee registration failed",
				"device", device.Name, "employee", employee.Name, "error", err)
			outcome.Err = err
			outcome.Reason = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// registerEmployee writes one employee to the device and persists the
// registration row.
func (srv *syncService) registerEmployee(
	ctx context.Context,
	client service.DeviceClient,
	device *entity.Device,
	employee *entity.Employee,
	allocator *identifierAllocator,
) error {
	uid := allocator.NextUID()
	userID := allocator.NextUserID()

	if err := client.SetUser(ctx, uid, employee.Name, 0, "", "", userID); err != nil {
		return errors.Wrap(err, "failed to write user to device")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeID := employee.ID

		return repoFactory.NewDeviceUserRepository().CreateDeviceUser(ctx, &entity.DeviceUser{
			ID:         uuid.New(),
			DeviceID:   device.ID,
			UID:        uid,
			UserID:     userID,
			Name:       employee.Name,
			EmployeeID: &employeeID,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to persist device user")
	}

	return nil
}

// PullAttendance connects to one device, reads its raw punches and runs the
// reconciliation engine.
func (srv *syncService) PullAttendance(ctx context.Context, deviceID uuid.UUID) (*usecase.ProcessResult, error) {
	device, err := srv.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.IsADMS {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("device %s pushes data and cannot be polled", device.Name))
	}

	return srv.pull(ctx, device)
}

func (srv *syncService) pull(ctx context.Context, device *entity.Device) (*usecase.ProcessResult, error) {
	client := srv.clientFactory.NewClient(device, srv.connectTimeout)
	if err := client.Connect(ctx); err != nil {
		srv.markState(ctx, device, entity.DeviceStateNotConnected)

		return nil, err
	}
	defer func() { _ = client.Disconnect(ctx) }()
	srv.markState(ctx, device, entity.DeviceStateConnected)

	punches, err := client.GetAttendance(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read attendance records")
	}

	result, err := srv.attendanceUsecase.ProcessPunches(ctx, device, punches, srv.processOptions())
	if err != nil {
		return nil, errors.Wrap(err, "failed to process punches")
	}

	srv.logger.Info("Attendance pull finished",
		"device", device.Name, "punches", len(punches),
		"logs", len(result.Logs), "failures", len(result.Failures))

	return result, nil
}

// PullAllDevices runs PullAttendance across every pollable device. A device
// that fails is reported and the loop moves on; one unreachable clock must
// not stall the rest of the fleet.
func (srv *syncService) PullAllDevices(ctx context.Context) ([]usecase.PullReport, error) {
	devices, err := srv.deviceRepo.FindPollableDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pollable devices")
	}

	reports := make([]usecase.PullReport, 0, len(devices))
	for _, device := range devices {
		report := usecase.PullReport{Device: device.Name}

		result, err := srv.pull(ctx, device)
		if err != nil {
			srv.logger.Warn("Device pull failed", "device", device.Name, "error", err)
			report.Err = err
			report.Reason = err.Error()
		} else {
			report.Result = result
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// RegisterEmployeeOnDevices makes sure one employee exists on every device:
// queued as a DATA command for ADMS devices, written directly to polled ones.
func (srv *syncService) RegisterEmployeeOnDevices(ctx context.Context, employeeID uuid.UUID) ([]usecase.SyncOutcome, error) {
	employee, err := srv.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	devices, err := srv.deviceRepo.FindAllDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	outcomes := make([]usecase.SyncOutcome, 0, len(devices))
	for _, device := range devices {
		outcome := usecase.SyncOutcome{Subject: device.Name}
		if err := srv.registerOnDevice(ctx, device, employee); err != nil {
			outcome.Err = err
			outcome.Reason = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (srv *syncService) registerOnDevice(ctx context.Context, device *entity.Device, employee *entity.Employee) error {
	existing, err := srv.deviceUserRepo.FindDeviceUserByEmployee(ctx, device.ID, employee.ID)
	if err != nil && !errors.Is(err, repository.ErrDeviceUserNotFound) {
		return errors.Wrap(err, "failed to look up registration")
	}
	if existing != nil {
		return nil
	}

	if device.IsADMS {
		if _, err := srv.commandUsecase.QueueExportEmployee(ctx, device.ID, employee.ID); err != nil {
			return errors.Wrap(err, "failed to queue export command")
		}

		return nil
	}

	client := srv.clientFactory.NewClient(device, srv.connectTimeout)
	if err := client.Connect(ctx); err != nil {
		srv.markState(ctx, device, entity.DeviceStateNotConnected)

		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()
	srv.markState(ctx, device, entity.DeviceStateConnected)

	deviceUsers, err := client.GetUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read device user table")
	}

	return srv.registerEmployee(ctx, client, device, employee, newIdentifierAllocator(deviceUsers))
}

func (srv *syncService) findDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// markState records the observed connection state, best effort.
func (srv *syncService) markState(ctx context.Context, device *entity.Device, state entity.DeviceState) {
	if device.State == state {
		return
	}
	device.State = state
	if err := srv.deviceRepo.UpdateDeviceState(ctx, device.ID, state); err != nil {
		srv.logger.Warn("Failed to record device state", "device", device.Name, "error", err)
	}
}
