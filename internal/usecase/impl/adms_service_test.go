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
	mockUsecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// admsServiceFixtures holds all test dependencies for ADMS service tests.
type admsServiceFixtures struct {
	service           usecase.ADMSUsecase
	deviceRepo        *mockRepo.MockDeviceRepository
	deviceUserRepo    *mockRepo.MockDeviceUserRepository
	operationLogRepo  *mockRepo.MockOperationLogRepository
	fingerprintRepo   *mockRepo.MockFingerprintRepository
	attendanceUsecase *mockUsecase.MockAttendanceUsecase
	commandUsecase    *mockUsecase.MockCommandUsecase
}

func createTestADMSService(t *testing.T) admsServiceFixtures {
	cfg := &config.Config{
		Attendance: &config.AttendanceConfig{StandardWorkingHours: 8},
	}
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	operationLogRepo := mockRepo.NewMockOperationLogRepository(t)
	fingerprintRepo := mockRepo.NewMockFingerprintRepository(t)
	attendanceUsecase := mockUsecase.NewMockAttendanceUsecase(t)
	commandUsecase := mockUsecase.NewMockCommandUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewADMSService(cfg, deviceRepo, deviceUserRepo, operationLogRepo,
		fingerprintRepo, attendanceUsecase, commandUsecase, logger)

	return admsServiceFixtures{
		service:           service,
		deviceRepo:        deviceRepo,
		deviceUserRepo:    deviceUserRepo,
		operationLogRepo:  operationLogRepo,
		fingerprintRepo:   fingerprintRepo,
		attendanceUsecase: attendanceUsecase,
		commandUsecase:    commandUsecase,
	}
}

func TestADMSService_Handshake_MarksDeviceConnected(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()

	fx.deviceRepo.EXPECT().FindDeviceBySerial(ctx, "ZK1234").Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected).
		Return(nil)

	found, err := fx.service.Handshake(ctx, "ZK1234")

	require.NoError(t, err)
	assert.Equal(t, device, found)
	assert.Equal(t, entity.DeviceStateConnected, found.State)
}

func TestADMSService_Handshake_UnknownSerial(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceBySerial(ctx, "ROGUE").
		Return(nil, repository.ErrDeviceNotFound)

	found, err := fx.service.Handshake(ctx, "ROGUE")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestADMSService_IngestAttendance_ParsesAndProcesses(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()
	body := "101\t2024-06-03 09:00:00\t1\t1\n" +
		"102 2024-06-03 09:05:00 2 1\n"

	var gotPunches []entity.RawPunch
	var gotOpts usecase.ProcessOptions
	fx.attendanceUsecase.EXPECT().
		ProcessPunches(ctx, device, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Device, punches []entity.RawPunch, opts usecase.ProcessOptions) (*usecase.ProcessResult, error) {
			gotPunches = punches
			gotOpts = opts

			return &usecase.ProcessResult{}, nil
		})

	result, err := fx.service.IngestAttendance(ctx, device, body)

	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, gotPunches, 2)
	assert.Equal(t, "101", gotPunches[0].UserID)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), gotPunches[0].Timestamp)
	assert.Equal(t, 1, gotPunches[0].Code)
	assert.Equal(t, "1", gotPunches[0].Number)
	assert.Equal(t, 0, gotPunches[0].Sequence)
	assert.Equal(t, "102", gotPunches[1].UserID)
	assert.Equal(t, 1, gotPunches[1].Sequence)

	assert.True(t, gotOpts.AutoRegister)
	assert.InDelta(t, 8, gotOpts.StandardWorkingHours, 0.001)
}

func TestADMSService_IngestAttendance_SkipsMalformedLines(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()
	body := "garbage line\n" +
		"101\t2024-06-03 09:00:00\t1\tnot-a-code\n" +
		"101\t2024-06-03 09:00:00\t1\t1\n"

	var gotPunches []entity.RawPunch
	fx.attendanceUsecase.EXPECT().
		ProcessPunches(ctx, device, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Device, punches []entity.RawPunch, _ usecase.ProcessOptions) (*usecase.ProcessResult, error) {
			gotPunches = punches

			return &usecase.ProcessResult{}, nil
		})

	_, err := fx.service.IngestAttendance(ctx, device, body)

	require.NoError(t, err)
	require.Len(t, gotPunches, 1)
	assert.Equal(t, "101", gotPunches[0].UserID)
}

func TestADMSService_IngestOperations_EventLine(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()
	body := "OPLOG 17 4 0 2024-06-03 10:00:00 0 0 0 0\n"

	var stored *entity.OperationLog
	fx.operationLogRepo.EXPECT().
		CreateOperationLog(ctx, mock.AnythingOfType("*entity.OperationLog")).
		RunAndReturn(func(_ context.Context, log *entity.OperationLog) error {
			stored = log

			return nil
		})

	err := fx.service.IngestOperations(ctx, device, body)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, device.ID, stored.DeviceID)
	assert.Equal(t, "17", stored.OpStamp)
	assert.Equal(t, "4", stored.Code)
	assert.Equal(t, "0", stored.Operator)
	// 10:00 IST is 04:30 UTC.
	assert.Equal(t, time.Date(2024, 6, 3, 4, 30, 0, 0, time.UTC), stored.OpTime.UTC())
}

func TestADMSService_IngestOperations_UserLineUpserts(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()
	existing := &entity.DeviceUser{ID: uuid.New(), DeviceID: device.ID, UserID: "101", Name: "Alicia"}
	body := "USER PIN=101\tName=Alice\tPri=0\n" +
		"USER PIN=205\tName=Bob\n"

	fx.deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{existing}, nil)
	fx.deviceUserRepo.EXPECT().UpdateDeviceUser(ctx, existing).Return(nil)

	fx.deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "205").
		Return(nil, nil)

	var created *entity.DeviceUser
	fx.deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		RunAndReturn(func(_ context.Context, du *entity.DeviceUser) error {
			created = du

			return nil
		})

	err := fx.service.IngestOperations(ctx, device, body)

	require.NoError(t, err)
	assert.Equal(t, "Alice", existing.Name)
	require.NotNil(t, created)
	assert.Equal(t, "205", created.UserID)
	assert.Equal(t, "Bob", created.Name)
}

func TestADMSService_IngestOperations_FingerprintLine(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()
	deviceUser := &entity.DeviceUser{ID: uuid.New(), DeviceID: device.ID, UserID: "101"}
	body := "FP PIN=101\tFID=0\tSize=4\tValid=1\tTMP=SGk\n"

	fx.deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)

	var stored *entity.FingerprintTemplate
	fx.fingerprintRepo.EXPECT().
		UpsertTemplate(ctx, mock.AnythingOfType("*entity.FingerprintTemplate")).
		RunAndReturn(func(_ context.Context, template *entity.FingerprintTemplate) error {
			stored = template

			return nil
		})

	err := fx.service.IngestOperations(ctx, device, body)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, deviceUser.ID, stored.DeviceUserID)
	assert.Equal(t, "SGk=", stored.Template)
}

func TestADMSService_IngestOperations_SkipsUnknownLines(t *testing.T) {
	fx := createTestADMSService(t)

	err := fx.service.IngestOperations(context.Background(), admsDevice(), "WEIRD STUFF\n\n")

	require.NoError(t, err)
}

func TestADMSService_CommandResponse_DelegatesToQueue(t *testing.T) {
	fx := createTestADMSService(t)

	ctx := context.Background()
	device := admsDevice()

	fx.commandUsecase.EXPECT().
		FetchPending(ctx, device.ID).
		Return("C:1:CHECK\n", nil)

	body, err := fx.service.CommandResponse(ctx, device)

	require.NoError(t, err)
	assert.Equal(t, "C:1:CHECK\n", body)
}
