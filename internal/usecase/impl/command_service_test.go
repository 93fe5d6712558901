package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

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

// commandServiceFixtures holds all test dependencies for command service tests.
type commandServiceFixtures struct {
	service      usecase.CommandUsecase
	txManager    *mockRepo.MockTransactionManager
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestCommandService(t *testing.T) commandServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCommandService(txManager, employeeRepo, logger)

	return commandServiceFixtures{
		service:      service,
		txManager:    txManager,
		employeeRepo: employeeRepo,
	}
}

func commandPassthroughExecute(fx commandServiceFixtures, factory *mockRepo.MockRepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCommandService_QueueExportEmployee_BuildsDataPayload(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	employee := &entity.Employee{ID: uuid.New(), Name: "Alice"}

	fx.employeeRepo.EXPECT().FindEmployeeByID(ctx, employee.ID).Return(employee, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUsersByDevice(ctx, deviceID).
		Return([]*entity.DeviceUser{{UID: 4, UserID: "104"}}, nil)
	commandRepo.EXPECT().
		CreateCommand(ctx, mock.AnythingOfType("*entity.DeviceCommand")).
		Return(nil)

	command, err := fx.service.QueueExportEmployee(ctx, deviceID, employee.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandData, command.Name)
	assert.Equal(t, entity.CommandStatusPending, command.Status)
	assert.Equal(t, "105", command.PIN)
	require.NotNil(t, command.EmployeeID)
	assert.Equal(t, employee.ID, *command.EmployeeID)
	assert.Equal(t,
		fmt.Sprintf("C:%s:DATA USER PIN=105\tName=Alice\tPri=0\tPasswd=\tCard=\tGrp=1\tTZ=\n", command.ID),
		command.ExecutionLog)
}

func TestCommandService_QueueDeleteUser_BuildsDelPayload(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	employeeID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, deviceID, employeeID).
		Return(&entity.DeviceUser{ID: uuid.New(), UserID: "101"}, nil)
	commandRepo.EXPECT().
		CreateCommand(ctx, mock.AnythingOfType("*entity.DeviceCommand")).
		Return(nil)

	command, err := fx.service.QueueDeleteUser(ctx, deviceID, employeeID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandDelete, command.Name)
	assert.Equal(t, "101", command.PIN)
	assert.Equal(t, fmt.Sprintf("C:%s:DATA DEL_USER PIN=101\n", command.ID), command.ExecutionLog)
}

func TestCommandService_QueueDeleteUser_NotRegistered(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	employeeID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	commandPassthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, deviceID, employeeID).
		Return(nil, repository.ErrDeviceUserNotFound)

	command, err := fx.service.QueueDeleteUser(ctx, deviceID, employeeID)

	require.Error(t, err)
	assert.Nil(t, command)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceUserNotFound))
}

func TestCommandService_QueueRenameUser_BuildsUpdatePayload(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	employee := &entity.Employee{ID: uuid.New(), Name: "Alice Smith"}

	fx.employeeRepo.EXPECT().FindEmployeeByID(ctx, employee.ID).Return(employee, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	deviceUserRepo.EXPECT().
		FindDeviceUserByEmployee(ctx, deviceID, employee.ID).
		Return(&entity.DeviceUser{ID: uuid.New(), UserID: "101", Name: "Alice"}, nil)
	commandRepo.EXPECT().
		CreateCommand(ctx, mock.AnythingOfType("*entity.DeviceCommand")).
		Return(nil)

	command, err := fx.service.QueueRenameUser(ctx, deviceID, employee.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandUpdate, command.Name)
	assert.Equal(t, "101", command.PIN)
	assert.Equal(t,
		fmt.Sprintf("C:%s:DATA UPDATE USER PIN=101\tName=Alice Smith\n", command.ID),
		command.ExecutionLog)
}

func TestCommandService_QueueConnectionCheck_ReusesPending(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	pending := &entity.DeviceCommand{
		ID:       uuid.New(),
		DeviceID: deviceID,
		Name:     entity.CommandCheck,
		Status:   entity.CommandStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().
		FindPendingCommandByName(ctx, deviceID, entity.CommandCheck).
		Return(pending, nil)

	command, err := fx.service.QueueConnectionCheck(ctx, deviceID)

	require.NoError(t, err)
	assert.Equal(t, pending, command)
}

func TestCommandService_QueueUserInfoRequest_CreatesCommand(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().
		FindPendingCommandByName(ctx, deviceID, entity.CommandUserInfo).
		Return(nil, repository.ErrCommandNotFound)
	commandRepo.EXPECT().
		CreateCommand(ctx, mock.AnythingOfType("*entity.DeviceCommand")).
		Return(nil)

	command, err := fx.service.QueueUserInfoRequest(ctx, deviceID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandUserInfo, command.Name)
	assert.Equal(t, fmt.Sprintf("C:%s:DATA QUERY USERINFO\n", command.ID), command.ExecutionLog)
}

func TestCommandService_FetchPending_ConcatenatesAndMarksExecuted(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	first := &entity.DeviceCommand{
		ID:           uuid.New(),
		Status:       entity.CommandStatusPending,
		ExecutionLog: "C:1:CHECK\n",
	}
	second := &entity.DeviceCommand{
		ID:           uuid.New(),
		Status:       entity.CommandStatusPending,
		ExecutionLog: "C:2:DATA QUERY USERINFO\n",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().
		FindPendingCommands(ctx, deviceID).
		Return([]*entity.DeviceCommand{first, second}, nil)
	commandRepo.EXPECT().UpdateCommand(ctx, first).Return(nil)
	commandRepo.EXPECT().UpdateCommand(ctx, second).Return(nil)

	body, err := fx.service.FetchPending(ctx, deviceID)

	require.NoError(t, err)
	assert.Equal(t, "C:1:CHECK\nC:2:DATA QUERY USERINFO\n", body)
	assert.Equal(t, entity.CommandStatusExecuted, first.Status)
	assert.Equal(t, entity.CommandStatusExecuted, second.Status)
}

func TestCommandService_FetchPending_EmptyQueue(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindPendingCommands(ctx, deviceID).Return(nil, nil)

	body, err := fx.service.FetchPending(ctx, deviceID)

	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestCommandService_Acknowledge_DataCreatesRegistration(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	command := &entity.DeviceCommand{
		ID:         uuid.New(),
		DeviceID:   uuid.New(),
		Name:       entity.CommandData,
		Status:     entity.CommandStatusExecuted,
		EmployeeID: &employeeID,
		PIN:        "105",
	}
	command.ExecutionLog = fmt.Sprintf(
		"C:%s:DATA USER PIN=105\tName=Alice Smith\tPri=0\tPasswd=\tCard=\tGrp=1\tTZ=\n", command.ID)

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo).Maybe()
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, command.DeviceID, "105").
		Return(nil, nil)

	var created *entity.DeviceUser
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		RunAndReturn(func(_ context.Context, du *entity.DeviceUser) error {
			created = du

			return nil
		})
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusSuccess, resolved.Status)

	require.NotNil(t, created)
	assert.Equal(t, command.DeviceID, created.DeviceID)
	assert.Equal(t, "105", created.UserID)
	assert.Equal(t, "Alice Smith", created.Name)
	require.NotNil(t, created.EmployeeID)
	assert.Equal(t, employeeID, *created.EmployeeID)
}

func TestCommandService_Acknowledge_DataLinksExistingRegistration(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	command := &entity.DeviceCommand{
		ID:         uuid.New(),
		DeviceID:   uuid.New(),
		Name:       entity.CommandData,
		Status:     entity.CommandStatusExecuted,
		EmployeeID: &employeeID,
		PIN:        "101",
	}
	command.ExecutionLog = fmt.Sprintf(
		"C:%s:DATA USER PIN=101\tName=Alice\tPri=0\tPasswd=\tCard=\tGrp=1\tTZ=\n", command.ID)
	existing := &entity.DeviceUser{ID: uuid.New(), DeviceID: command.DeviceID, UserID: "101"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo).Maybe()
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, command.DeviceID, "101").
		Return([]*entity.DeviceUser{existing}, nil)
	deviceUserRepo.EXPECT().UpdateDeviceUser(ctx, existing).Return(nil)
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusSuccess, resolved.Status)
	assert.Equal(t, "Alice", existing.Name)
	require.NotNil(t, existing.EmployeeID)
	assert.Equal(t, employeeID, *existing.EmployeeID)
}

func TestCommandService_Acknowledge_DelRemovesRegistration(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	command := &entity.DeviceCommand{
		ID:         uuid.New(),
		DeviceID:   uuid.New(),
		Name:       entity.CommandDelete,
		Status:     entity.CommandStatusExecuted,
		EmployeeID: &employeeID,
		PIN:        "101",
	}
	command.ExecutionLog = fmt.Sprintf("C:%s:DATA DEL_USER PIN=101\n", command.ID)
	existing := &entity.DeviceUser{ID: uuid.New(), DeviceID: command.DeviceID, UserID: "101"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo).Maybe()
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, command.DeviceID, "101").
		Return([]*entity.DeviceUser{existing}, nil)
	deviceUserRepo.EXPECT().DeleteDeviceUser(ctx, existing.ID).Return(nil)
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusSuccess, resolved.Status)
}

func TestCommandService_Acknowledge_UpdateRenamesRegistration(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	command := &entity.DeviceCommand{
		ID:         uuid.New(),
		DeviceID:   uuid.New(),
		Name:       entity.CommandUpdate,
		Status:     entity.CommandStatusExecuted,
		EmployeeID: &employeeID,
		PIN:        "101",
	}
	command.ExecutionLog = fmt.Sprintf("C:%s:DATA UPDATE USER PIN=101\tName=Alice Smith\n", command.ID)
	existing := &entity.DeviceUser{ID: uuid.New(), DeviceID: command.DeviceID, UserID: "101", Name: "Alice"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo).Maybe()
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, command.DeviceID, "101").
		Return([]*entity.DeviceUser{existing}, nil)
	deviceUserRepo.EXPECT().UpdateDeviceUser(ctx, existing).Return(nil)
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusSuccess, resolved.Status)
	assert.Equal(t, "Alice Smith", existing.Name)
}

func TestCommandService_Acknowledge_CheckHasNoSideEffect(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	command := &entity.DeviceCommand{
		ID:       uuid.New(),
		DeviceID: uuid.New(),
		Name:     entity.CommandCheck,
		Status:   entity.CommandStatusExecuted,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusSuccess, resolved.Status)
}

func TestCommandService_Acknowledge_RefusesPendingCommand(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	command := &entity.DeviceCommand{
		ID:     uuid.New(),
		Name:   entity.CommandCheck,
		Status: entity.CommandStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCommandNotExecuted))
}

func TestCommandService_Acknowledge_SideEffectFailureParksCommand(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	command := &entity.DeviceCommand{
		ID:         uuid.New(),
		DeviceID:   uuid.New(),
		Name:       entity.CommandData,
		Status:     entity.CommandStatusExecuted,
		EmployeeID: &employeeID,
		PIN:        "105",
	}
	command.ExecutionLog = fmt.Sprintf("C:%s:DATA USER PIN=105\tName=Alice\n", command.ID)

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo).Maybe()
	factory.EXPECT().NewDeviceUserRepository().Return(deviceUserRepo).Maybe()
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandByID(ctx, command.ID).Return(command, nil)
	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, command.DeviceID, "105").
		Return(nil, errors.New("connection reset"))
	commandRepo.EXPECT().UpdateCommand(ctx, command).Return(nil)

	resolved, err := fx.service.Acknowledge(ctx, command.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CommandStatusFailed, resolved.Status)
	assert.Contains(t, resolved.FailureNote, "connection reset")
}

func TestCommandService_Acknowledge_CommandNotFound(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	commandID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().
		FindCommandByID(ctx, commandID).
		Return(nil, repository.ErrCommandNotFound)

	resolved, err := fx.service.Acknowledge(ctx, commandID)

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCommandNotFound))
}

func TestCommandService_ListCommands(t *testing.T) {
	fx := createTestCommandService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	want := []*entity.DeviceCommand{{ID: uuid.New()}, {ID: uuid.New()}}

	factory := mockRepo.NewMockRepositoryFactory(t)
	commandRepo := mockRepo.NewMockCommandRepository(t)
	factory.EXPECT().NewCommandRepository().Return(commandRepo)
	commandPassthroughExecute(fx, factory)

	commandRepo.EXPECT().FindCommandsByDevice(ctx, deviceID, 20).Return(want, nil)

	commands, err := fx.service.ListCommands(ctx, deviceID, 20)

	require.NoError(t, err)
	assert.Equal(t, want, commands)
}

func TestParseUserPayload(t *testing.T) {
	pin, name := parseUserPayload("C:42:DATA USER PIN=105\tName=Alice Smith\tPri=0\tPasswd=\tCard=\tGrp=1\tTZ=\n")
	assert.Equal(t, "105", pin)
	assert.Equal(t, "Alice Smith", name)

	pin, name = parseUserPayload("C:42:DATA DEL_USER PIN=9\n")
	assert.Equal(t, "9", pin)
	assert.Empty(t, name)

	pin, name = parseUserPayload("C:42:CHECK\n")
	assert.Empty(t, pin)
	assert.Empty(t, name)
}
