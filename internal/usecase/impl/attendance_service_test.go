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
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// attendanceServiceFixtures holds all test dependencies for attendance service tests.
type attendanceServiceFixtures struct {
	service       usecase.AttendanceUsecase
	txManager     *mockRepo.MockTransactionManager
	punchCodeRepo *mockRepo.MockPunchCodeRepository
}

func createTestAttendanceService(t *testing.T) attendanceServiceFixtures {
	cfg := &config.Config{
		Attendance: &config.AttendanceConfig{StandardWorkingHours: 8},
	}
	txManager := mockRepo.NewMockTransactionManager(t)
	punchCodeRepo := mockRepo.NewMockPunchCodeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAttendanceService(cfg, txManager, punchCodeRepo, logger)

	return attendanceServiceFixtures{
		service:       service,
		txManager:     txManager,
		punchCodeRepo: punchCodeRepo,
	}
}

func testDevice() *entity.Device {
	return &entity.Device{
		ID:       uuid.New(),
		Name:     "Front Gate",
		Timezone: "Asia/Kolkata",
	}
}

// passthroughExecute routes every transaction through the given factory so the
// function under test runs against the repo mocks.
func passthroughExecute(fx attendanceServiceFixtures, factory *mockRepo.MockRepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAttendanceService_ProcessPunches_OpensAttendance(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		Name:       "Alice",
		EmployeeID: &employeeID,
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(entity.DefaultPunchCodeMappings(device.ID), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, deviceUser.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrPunchLogNotFound)
	attendanceRepo.EXPECT().
		FindLatestAttendance(ctx, employeeID).
		Return(nil, repository.ErrAttendanceNotFound)
	attendanceRepo.EXPECT().
		CreateAttendance(ctx, mock.AnythingOfType("*entity.Attendance")).
		Return(nil)
	punchLogRepo.EXPECT().
		CreatePunchLog(ctx, mock.AnythingOfType("*entity.PunchLog")).
		Return(nil)

	local := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: local, Code: 1},
	}, usecase.ProcessOptions{StandardWorkingHours: 8})

	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	assert.Empty(t, result.Failures)
	assert.Equal(t, entity.PunchStatusCheckIn, result.Logs[0].Status)
	assert.True(t, result.Logs[0].Calculated)
	assert.Equal(t, "Front Gate", result.Logs[0].DeviceName)
	// 09:00 IST is 03:30 UTC.
	assert.Equal(t, time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC), result.Logs[0].PunchTime.UTC())
}

func TestAttendanceService_ProcessPunches_ClosesOpenAttendance(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		EmployeeID: &employeeID,
	}
	open := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, deviceUser.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrPunchLogNotFound)
	attendanceRepo.EXPECT().
		FindLatestAttendance(ctx, employeeID).
		Return(open, nil)
	attendanceRepo.EXPECT().
		UpdateAttendance(ctx, mock.AnythingOfType("*entity.Attendance")).
		Return(nil)
	punchLogRepo.EXPECT().
		CreatePunchLog(ctx, mock.AnythingOfType("*entity.PunchLog")).
		Return(nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC), Code: 2},
	}, usecase.ProcessOptions{})

	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, entity.PunchStatusCheckOut, result.Logs[0].Status)
	require.NotNil(t, open.CheckOut)
	assert.Equal(t, time.Date(2024, 6, 3, 12, 30, 0, 0, time.UTC), open.CheckOut.UTC())
}

func TestAttendanceService_ProcessPunches_StalePunchDoesNotMutate(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		EmployeeID: &employeeID,
	}
	open := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, deviceUser.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrPunchLogNotFound)
	attendanceRepo.EXPECT().
		FindLatestAttendance(ctx, employeeID).
		Return(open, nil)
	punchLogRepo.EXPECT().
		CreatePunchLog(ctx, mock.AnythingOfType("*entity.PunchLog")).
		Return(nil)

	// 09:00 IST equals the open check-in exactly: stale, no update calls.
	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{})

	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, entity.PunchStatusPunched, result.Logs[0].Status)
	assert.False(t, result.Logs[0].Calculated)
	assert.Nil(t, open.CheckOut)
}

func TestAttendanceService_ProcessPunches_ExistingCalculatedLogMerges(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		EmployeeID: &employeeID,
	}
	existing := &entity.PunchLog{
		ID:           uuid.New(),
		DeviceUserID: deviceUser.ID,
		EmployeeID:   &employeeID,
		PunchTime:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
		Status:       entity.PunchStatusCheckIn,
		Calculated:   true,
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, deviceUser.ID, mock.AnythingOfType("time.Time")).
		Return(existing, nil)
	punchLogRepo.EXPECT().
		UpdatePunchLog(ctx, existing).
		Return(nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1, Number: "42"},
	}, usecase.ProcessOptions{})

	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	// Calculated rows keep their inferred status; only informational fields refresh.
	assert.Equal(t, entity.PunchStatusCheckIn, existing.Status)
	assert.Equal(t, "42", existing.Number)
	assert.Equal(t, "Front Gate", existing.DeviceName)
}

func TestAttendanceService_ProcessPunches_UnknownUserIsFailure(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "999").
		Return(nil, nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "999", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{AutoRegister: false})

	require.NoError(t, err)
	assert.Empty(t, result.Logs)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "999", result.Failures[0].UserID)
	assert.ErrorIs(t, result.Failures[0].Err, domainerrors.ErrDeviceUserNotFound)
}

func TestAttendanceService_ProcessPunches_AutoRegistersUnknownUser(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "999").
		Return(nil, nil)
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		Return(nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrPunchLogNotFound)
	punchLogRepo.EXPECT().
		CreatePunchLog(ctx, mock.AnythingOfType("*entity.PunchLog")).
		Return(nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "999", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{AutoRegister: true})

	require.NoError(t, err)
	assert.Empty(t, result.Failures)
	require.Len(t, result.Logs, 1)
	// No employee link yet, so the punch carries no attendance semantics.
	assert.Equal(t, entity.PunchStatusPunched, result.Logs[0].Status)
	assert.Nil(t, result.Logs[0].EmployeeID)
}

func TestAttendanceService_ProcessPunches_DuplicateIdentifier(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	first := uuid.New()
	second := uuid.New()

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{
			{ID: first, UserID: "101", Name: "Alice"},
			{ID: second, UserID: "101", Name: "Bob"},
		}, nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{})

	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, domainerrors.ErrDuplicateIdentifier)
	assert.Contains(t, result.Failures[0].Reason, "Alice")
	assert.Contains(t, result.Failures[0].Reason, "Bob")
}

func TestAttendanceService_ProcessPunches_BadTimezoneCollectsFailure(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	device.Timezone = "Mars/Olympus"
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		EmployeeID: &employeeID,
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)

	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Logs)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, domainerrors.ErrTimeConversion)
}

func TestAttendanceService_ProcessPunches_MultiShiftOpensSecondShift(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()
	employeeID := uuid.New()
	deviceUser := &entity.DeviceUser{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		UserID:     "101",
		EmployeeID: &employeeID,
	}
	firstEnd := time.Date(2024, 6, 3, 6, 30, 0, 0, time.UTC)
	latest := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
		CheckOut:   &firstEnd,
		MultiShift: true,
	}
	closedShift := &entity.Shift{
		ID:           uuid.New(),
		AttendanceID: latest.ID,
		CheckIn:      latest.CheckIn,
		CheckOut:     &firstEnd,
	}

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(entity.DefaultPunchCodeMappings(device.ID), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	passthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)
	punchLogRepo.EXPECT().
		FindPunchLogByUserAndTime(ctx, deviceUser.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrPunchLogNotFound)
	attendanceRepo.EXPECT().
		FindLatestAttendance(ctx, employeeID).
		Return(latest, nil)
	attendanceRepo.EXPECT().
		FindShiftsByAttendance(ctx, latest.ID).
		Return([]*entity.Shift{closedShift}, nil)
	attendanceRepo.EXPECT().
		CreateShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Return(nil)
	attendanceRepo.EXPECT().
		UpdateAttendance(ctx, latest).
		Return(nil)
	punchLogRepo.EXPECT().
		CreatePunchLog(ctx, mock.AnythingOfType("*entity.PunchLog")).
		Return(nil)

	// 13:00 IST, after the closed morning shift on the same day.
	result, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC), Code: 1},
	}, usecase.ProcessOptions{MultiShift: true})

	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, entity.PunchStatusCheckIn, result.Logs[0].Status)
	assert.Nil(t, latest.CheckOut)
}

func TestAttendanceService_ProcessPunches_Empty(t *testing.T) {
	fx := createTestAttendanceService(t)

	result, err := fx.service.ProcessPunches(context.Background(), testDevice(), nil, usecase.ProcessOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Logs)
	assert.Empty(t, result.Failures)
}

func TestAttendanceService_DeletePunchLog_CalculatedGuard(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	logID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	passthroughExecute(fx, factory)

	punchLogRepo.EXPECT().
		DeletePunchLog(ctx, logID).
		Return(repository.ErrPunchLogCalculated)

	err := fx.service.DeletePunchLog(ctx, logID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeletionGuard)
}

func TestAttendanceService_DeleteAttendance_ResetsCalculatedFlags(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	checkOut := time.Date(2024, 6, 3, 12, 30, 0, 0, time.UTC)
	attendance := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
		CheckOut:   &checkOut,
	}
	inLog := &entity.PunchLog{ID: uuid.New(), EmployeeID: &employeeID, PunchTime: attendance.CheckIn, Calculated: true}
	outLog := &entity.PunchLog{ID: uuid.New(), EmployeeID: &employeeID, PunchTime: checkOut, Calculated: true}

	factory := mockRepo.NewMockRepositoryFactory(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	passthroughExecute(fx, factory)

	attendanceRepo.EXPECT().
		FindAttendanceByID(ctx, attendance.ID).
		Return(attendance, nil)
	punchLogRepo.EXPECT().
		FindPunchLogsByEmployeeAndTimes(ctx, employeeID, []time.Time{attendance.CheckIn, checkOut}).
		Return([]*entity.PunchLog{inLog, outLog}, nil)
	punchLogRepo.EXPECT().
		SetCalculated(ctx, inLog.ID, false).
		Return(nil)
	punchLogRepo.EXPECT().
		SetCalculated(ctx, outLog.ID, false).
		Return(nil)
	attendanceRepo.EXPECT().
		DeleteAttendance(ctx, attendance.ID).
		Return(nil)

	err := fx.service.DeleteAttendance(ctx, attendance.ID)

	require.NoError(t, err)
}

func TestAttendanceService_DeleteAttendance_NotFound(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	punchLogRepo := mockRepo.NewMockPunchLogRepository(t)
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	factory.EXPECT().NewPunchLogRepository().Return(punchLogRepo).Maybe()
	passthroughExecute(fx, factory)

	attendanceRepo.EXPECT().
		FindAttendanceByID(ctx, id).
		Return(nil, repository.ErrAttendanceNotFound)

	err := fx.service.DeleteAttendance(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAttendanceService_GetAttendances_ComputesSummary(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	checkOut := time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC)
	attendance := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC),
		CheckOut:   &checkOut,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	factory.EXPECT().NewAttendanceRepository().Return(attendanceRepo).Maybe()
	passthroughExecute(fx, factory)

	attendanceRepo.EXPECT().
		FindAttendancesByEmployee(ctx, employeeID, 10).
		Return([]*entity.Attendance{attendance}, nil)

	attendances, err := fx.service.GetAttendances(ctx, employeeID, 10)

	require.NoError(t, err)
	require.Len(t, attendances, 1)
	require.NotNil(t, attendances[0].Summary)
	assert.InDelta(t, 9.5, attendances[0].Summary.WorkedHours, 0.001)
	assert.InDelta(t, 1.5, attendances[0].Summary.OvertimeHours, 0.001)
}

func TestAttendanceService_ProcessPunches_PropagatesRepoError(t *testing.T) {
	fx := createTestAttendanceService(t)

	ctx := context.Background()
	device := testDevice()

	fx.punchCodeRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return(nil, errors.New("database connection lost"))

	_, err := fx.service.ProcessPunches(ctx, device, []entity.RawPunch{
		{UserID: "101", Timestamp: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
	}, usecase.ProcessOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "punch code mappings")
}
