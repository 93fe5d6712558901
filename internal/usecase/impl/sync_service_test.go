package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	mockRepo "timeclock/internal/mocks/repository"
	mockService "timeclock/internal/mocks/service"
	mockUsecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service           usecase.SyncUsecase
	txManager         *mockRepo.MockTransactionManager
	deviceRepo        *mockRepo.MockDeviceRepository
	deviceUserRepo    *mockRepo.MockDeviceUserRepository
	employeeRepo      *mockRepo.MockEmployeeRepository
	clientFactory     *mockService.MockDeviceClientFactory
	attendanceUsecase *mockUsecase.MockAttendanceUsecase
	commandUsecase    *mockUsecase.MockCommandUsecase
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	cfg := &config.Config{
		Device:     &config.DeviceConfig{ConnectTimeout: 10 * time.Second},
		Attendance: &config.AttendanceConfig{StandardWorkingHours: 8},
	}
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	clientFactory := mockService.NewMockDeviceClientFactory(t)
	attendanceUsecase := mockUsecase.NewMockAttendanceUsecase(t)
	commandUsecase := mockUsecase.NewMockCommandUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSyncService(cfg, txManager, deviceRepo, deviceUserRepo, employeeRepo,
		clientFactory, attendanceUsecase, commandUsecase, logger)

	return syncServiceFixtures{
		service:           service,
		txManager:         txManager,
		deviceRepo:        deviceRepo,
		deviceUserRepo:    deviceUserRepo,
		employeeRepo:      employeeRepo,
		clientFactory:     clientFactory,
		attendanceUsecase: attendanceUsecase,
		commandUsecase:    commandUsecase,
	}
}

func pollableDevice() *entity.Device {
	return &entity.Device{
		ID:        uuid.New(),
		Name:      "Warehouse",
		IPAddress: "10.0.0.5",
		Port:      4370,
		Timezone:  "Asia/Kolkata",
	}
}

func admsDevice() *entity.Device {
	return &entity.Device{
		ID:           uuid.New(),
		Name:         "Lobby",
		Timezone:     "Asia/Kolkata",
		IsADMS:       true,
		SerialNumber: "ZK1234",
	}
}

func TestSyncService_CheckConnection_RecordsConnectedState(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(device, 10*time.Second).Return(client)
	client.EXPECT().Connect(ctx).Return(nil)
	client.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected).
		Return(nil)

	err := fx.service.CheckConnection(ctx, device.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStateConnected, device.State)
}

func TestSyncService_CheckConnection_RecordsFailure(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()
	device.State = entity.DeviceStateConnected

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(device, 10*time.Second).Return(client)
	client.EXPECT().
		Connect(ctx).
		Return(domainerrors.ErrConnectionFailed.WrapMessage("dial timeout"))
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateNotConnected).
		Return(nil)

	err := fx.service.CheckConnection(ctx, device.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailed))
	assert.Equal(t, entity.DeviceStateNotConnected, device.State)
}

func TestSyncService_CheckConnection_ADMSQueuesProbe(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := admsDevice()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.commandUsecase.EXPECT().
		QueueConnectionCheck(ctx, device.ID).
		Return(&entity.DeviceCommand{ID: uuid.New()}, nil)

	err := fx.service.CheckConnection(ctx, device.ID)

	require.NoError(t, err)
}

func TestSyncService_CheckConnection_DeviceNotFound(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.CheckConnection(ctx, deviceID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSyncService_SynchronizeEmployees_AllocatesFreshIdentifiers(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()
	employee := &entity.Employee{ID: uuid.New(), Name: "Alice", Code: "E-17"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.employeeRepo.EXPECT().
		FindEmployeesWithoutDeviceUser(ctx, device.ID).
		Return([]*entity.Employee{employee}, nil)

	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(device, 10*time.Second).Return(client)
	client.EXPECT().Connect(ctx).Return(nil)
	client.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected).
		Return(nil)

	// The device already holds slots 1-2, so the new registration must land
	// on slot 3 with user id "103".
	client.EXPECT().GetUsers(ctx).Return([]entity.DeviceUser{
		{UID: 1, UserID: "101"},
		{UID: 2, UserID: "102"},
	}, nil)
	client.EXPECT().SetUser(ctx, 3, "Alice", 0, "", "", "103").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	var created *entity.DeviceUser
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		RunAndReturn(func(_ context.Context, du *entity.DeviceUser) error {
			created = du

			return nil
		})

	outcomes, err := fx.service.SynchronizeEmployees(ctx, device.ID)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK())
	assert.Equal(t, "Alice", outcomes[0].Subject)

	require.NotNil(t, created)
	assert.Equal(t, device.ID, created.DeviceID)
	assert.Equal(t, 3, created.UID)
	assert.Equal(t, "103", created.UserID)
	require.NotNil(t, created.EmployeeID)
	assert.Equal(t, employee.ID, *created.EmployeeID)
}

func TestSyncService_SynchronizeEmployees_CollectsPerEmployeeFailures(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()
	alice := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	bob := &entity.Employee{ID: uuid.New(), Name: "Bob"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.employeeRepo.EXPECT().
		FindEmployeesWithoutDeviceUser(ctx, device.ID).
		Return([]*entity.Employee{alice, bob}, nil)

	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(device, 10*time.Second).Return(client)
	client.EXPECT().Connect(ctx).Return(nil)
	client.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected).
		Return(nil)
	client.EXPECT().GetUsers(ctx).Return(nil, nil)

	// Alice's write fails on the device; Bob's succeeds and is persisted.
	client.EXPECT().
		SetUser(ctx, 1, "Alice", 0, "", "", "1").
		Return(errors.New("device storage full"))
	client.EXPECT().SetUser(ctx, 2, "Bob", 0, "", "", "2").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		Return(nil)

	outcomes, err := fx.service.SynchronizeEmployees(ctx, device.ID)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].OK())
	assert.Contains(t, outcomes[0].Reason, "device storage full")
	assert.True(t, outcomes[1].OK())
}

func TestSyncService_SynchronizeEmployees_NothingMissing(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.employeeRepo.EXPECT().
		FindEmployeesWithoutDeviceUser(ctx, device.ID).
		Return(nil, nil)

	outcomes, err := fx.service.SynchronizeEmployees(ctx, device.ID)

	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestSyncService_SynchronizeEmployees_ADMSQueuesExports(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := admsDevice()
	alice := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	bob := &entity.Employee{ID: uuid.New(), Name: "Bob"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.employeeRepo.EXPECT().
		FindEmployeesWithoutDeviceUser(ctx, device.ID).
		Return([]*entity.Employee{alice, bob}, nil)
	fx.commandUsecase.EXPECT().
		QueueExportEmployee(ctx, device.ID, alice.ID).
		Return(&entity.DeviceCommand{ID: uuid.New()}, nil)
	fx.commandUsecase.EXPECT().
		QueueExportEmployee(ctx, device.ID, bob.ID).
		Return(nil, errors.New("queue unavailable"))

	outcomes, err := fx.service.SynchronizeEmployees(ctx, device.ID)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[1].OK())
}

func TestSyncService_PullAttendance_RunsEngine(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := pollableDevice()
	punches := []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(device, 10*time.Second).Return(client)
	client.EXPECT().Connect(ctx).Return(nil)
	client.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected).
		Return(nil)
	client.EXPECT().GetAttendance(ctx).Return(punches, nil)

	want := &usecase.ProcessResult{Logs: []*entity.PunchLog{{ID: uuid.New()}}}
	fx.attendanceUsecase.EXPECT().
		ProcessPunches(ctx, device, punches, usecase.ProcessOptions{StandardWorkingHours: 8}).
		Return(want, nil)

	result, err := fx.service.PullAttendance(ctx, device.ID)

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSyncService_PullAttendance_RejectsADMSDevice(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := admsDevice()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	result, err := fx.service.PullAttendance(ctx, device.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSyncService_PullAllDevices_IsolatesFailures(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	reachable := pollableDevice()
	unreachable := pollableDevice()
	unreachable.Name = "Back Office"

	fx.deviceRepo.EXPECT().
		FindPollableDevices(ctx).
		Return([]*entity.Device{unreachable, reachable}, nil)

	badClient := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(unreachable, 10*time.Second).Return(badClient)
	badClient.EXPECT().
		Connect(ctx).
		Return(domainerrors.ErrConnectionFailed.WrapMessage("dial timeout"))
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, unreachable.ID, entity.DeviceStateNotConnected).
		Return(nil)

	goodClient := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(reachable, 10*time.Second).Return(goodClient)
	goodClient.EXPECT().Connect(ctx).Return(nil)
	goodClient.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, reachable.ID, entity.DeviceStateConnected).
		Return(nil)
	goodClient.EXPECT().GetAttendance(ctx).Return(nil, nil)
	fx.attendanceUsecase.EXPECT().
		ProcessPunches(ctx, reachable, mock.Anything, mock.Anything).
		Return(&usecase.ProcessResult{}, nil)

	reports, err := fx.service.PullAllDevices(ctx)

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Back Office", reports[0].Device)
	require.Error(t, reports[0].Err)
	assert.Equal(t, reachable.Name, reports[1].Device)
	assert.NoError(t, reports[1].Err)
	assert.NotNil(t, reports[1].Result)
}

func TestSyncService_RegisterEmployeeOnDevices_MixedFleet(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	employee := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	registered := pollableDevice()
	registered.Name = "Front Gate"
	direct := pollableDevice()
	push := admsDevice()

	fx.employeeRepo.EXPECT().FindEmployeeByID(ctx, employee.ID).Return(employee, nil)
	fx.deviceRepo.EXPECT().
		FindAllDevices(ctx).
		Return([]*entity.Device{registered, direct, push}, nil)

	// Already registered on the first device, nothing to write there.
	fx.deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, registered.ID, employee.ID).
		Return(&entity.DeviceUser{ID: uuid.New()}, nil)

	// Written directly to the second.
	fx.deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, direct.ID, employee.ID).
		Return(nil, repository.ErrDeviceUserNotFound)
	client := mockService.NewMockDeviceClient(t)
	fx.clientFactory.EXPECT().NewClient(direct, 10*time.Second).Return(client)
	client.EXPECT().Connect(ctx).Return(nil)
	client.EXPECT().Disconnect(ctx).Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, direct.ID, entity.DeviceStateConnected).
		Return(nil)
	client.EXPECT().GetUsers(ctx).Return(nil, nil)
	client.EXPECT().SetUser(ctx, 1, "Alice", 0, "", "", "1").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		Return(nil)

	// Queued for the push device.
	fx.deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, push.ID, employee.ID).
		Return(nil, repository.ErrDeviceUserNotFound)
	fx.commandUsecase.EXPECT().
		QueueExportEmployee(ctx, push.ID, employee.ID).
		Return(&entity.DeviceCommand{ID: uuid.New()}, nil)

	outcomes, err := fx.service.RegisterEmployeeOnDevices(ctx, employee.ID)

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.True(t, outcome.OK(), outcome.Subject)
	}
}

func TestSyncService_RegisterEmployeeOnDevices_EmployeeNotFound(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	employeeID := uuid.New()

	fx.employeeRepo.EXPECT().
		FindEmployeeByID(ctx, employeeID).
		Return(nil, repository.ErrEmployeeNotFound)

	outcomes, err := fx.service.RegisterEmployeeOnDevices(ctx, employeeID)

	require.Error(t, err)
	assert.Nil(t, outcomes)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
