package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// commandService implements the CommandUsecase interface.
type commandService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// NewCommandService is the constructor for commandService.
func NewCommandService(
	txManager repository.TransactionManager,
	employeeRepo repository.EmployeeRepository,
	logger *slog.Logger,
) usecase.CommandUsecase {
	return &commandService{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// QueueExportEmployee queues a DATA command registering the employee on the
// device. The textual user id is allocated against the registrations already
// persisted for the device; the device confirms the write through the
// acknowledgment channel before the DeviceUser row is created.
func (srv *commandService) QueueExportEmployee(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error) {
	employee, err := srv.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var command *entity.DeviceCommand
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := repoFactory.NewDeviceUserRepository().FindDeviceUsersByDevice(ctx, deviceID)
		if err != nil {
			return errors.Wrap(err, "failed to load device registrations")
		}

		seeds := make([]entity.DeviceUser, 0, len(existing))
		for _, user := range existing {
			seeds = append(seeds, *user)
		}
		pin := newIdentifierAllocator(seeds).NextUserID()

		command = &entity.DeviceCommand{
			ID:         uuid.New(),
			DeviceID:   deviceID,
			Name:       entity.CommandData,
			Status:     entity.CommandStatusPending,
			EmployeeID: &employeeID,
			PIN:        pin,
		}
		command.ExecutionLog = fmt.Sprintf("C:%s:DATA USER PIN=%s\tName=%s\tPri=0\tPasswd=\tCard=\tGrp=1\tTZ=\n",
			command.ID, pin, employee.Name)

		return repoFactory.NewCommandRepository().CreateCommand(ctx, command)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue export command")
	}

	return command, nil
}

// QueueDeleteUser queues a DEL command removing the employee's registration
// from the device.
func (srv *commandService) QueueDeleteUser(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error) {
	var command *entity.DeviceCommand
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUser, err := repoFactory.NewDeviceUserRepository().FindDeviceUserByEmployee(ctx, deviceID, employeeID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceUserNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceUserNotFound, "employee has no registration on this device")
			}

			return errors.Wrap(err, "failed to find registration")
		}

		command = &entity.DeviceCommand{
			ID:         uuid.New(),
			DeviceID:   deviceID,
			Name:       entity.CommandDelete,
			Status:     entity.CommandStatusPending,
			EmployeeID: &employeeID,
			PIN:        deviceUser.UserID,
		}
		command.ExecutionLog = fmt.Sprintf("C:%s:DATA DEL_USER PIN=%s\n", command.ID, deviceUser.UserID)

		return repoFactory.NewCommandRepository().CreateCommand(ctx, command)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue delete command")
	}

	return command, nil
}

// QueueRenameUser queues an UPDATE command renaming the employee's
// registration on the device.
func (srv *commandService) QueueRenameUser(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error) {
	employee, err := srv.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var command *entity.DeviceCommand
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUser, err := repoFactory.NewDeviceUserRepository().FindDeviceUserByEmployee(ctx, deviceID, employeeID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceUserNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceUserNotFound, "employee has no registration on this device")
			}

			return errors.Wrap(err, "failed to find registration")
		}

		command = &entity.DeviceCommand{
			ID:         uuid.New(),
			DeviceID:   deviceID,
			Name:       entity.CommandUpdate,
			Status:     entity.CommandStatusPending,
			EmployeeID: &employeeID,
			PIN:        deviceUser.UserID,
		}
		command.ExecutionLog = fmt.Sprintf("C:%s:DATA UPDATE USER PIN=%s\tName=%s\n",
			command.ID, deviceUser.UserID, employee.Name)

		return repoFactory.NewCommandRepository().CreateCommand(ctx, command)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue rename command")
	}

	return command, nil
}

// QueueUserInfoRequest queues a USERINFO command, reusing a pending one when
// it exists so repeated clicks cannot flood the device.
func (srv *commandService) QueueUserInfoRequest(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceCommand, error) {
	return srv.queueSingleton(ctx, deviceID, entity.CommandUserInfo, "DATA QUERY USERINFO")
}

// QueueConnectionCheck queues a CHECK command, reusing a pending one when it
// exists.
func (srv *commandService) QueueConnectionCheck(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceCommand, error) {
	return srv.queueSingleton(ctx, deviceID, entity.CommandCheck, "CHECK")
}

// queueSingleton creates a pending command of the given name unless one is
// already waiting for the device.
func (srv *commandService) queueSingleton(
	ctx context.Context,
	deviceID uuid.UUID,
	name entity.CommandName,
	payload string,
) (*entity.DeviceCommand, error) {
	var command *entity.DeviceCommand
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commandRepo := repoFactory.NewCommandRepository()

		pending, err := commandRepo.FindPendingCommandByName(ctx, deviceID, name)
		if err != nil && !errors.Is(err, repository.ErrCommandNotFound) {
			return errors.Wrap(err, "failed to look for pending command")
		}
		if pending != nil {
			command = pending

			return nil
		}

		command = &entity.DeviceCommand{
			ID:       uuid.New(),
			DeviceID: deviceID,
			Name:     name,
			Status:   entity.CommandStatusPending,
		}
		command.ExecutionLog = fmt.Sprintf("C:%s:%s\n", command.ID, payload)

		return commandRepo.CreateCommand(ctx, command)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue command")
	}

	return command, nil
}

// FetchPending concatenates the device's pending command payloads into a
// single response body and marks them executed. The device fetches this on
// its poll cycle; an empty string means nothing is queued.
func (srv *commandService) FetchPending(ctx context.Context, deviceID uuid.UUID) (string, error) {
	var body strings.Builder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commandRepo := repoFactory.NewCommandRepository()

		pending, err := commandRepo.FindPendingCommands(ctx, deviceID)
		if err != nil {
			return errors.Wrap(err, "failed to load pending commands")
		}

		for _, command := range pending {
			body.WriteString(command.ExecutionLog)
			command.Status = entity.CommandStatusExecuted
			if err := commandRepo.UpdateCommand(ctx, command); err != nil {
				return errors.Wrap(err, "failed to mark command executed")
			}
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch pending commands")
	}

	return body.String(), nil
}

// Acknowledge resolves an executed command. The side effect runs first; only
// a side effect that sticks moves the command to success. A failed side
// effect parks the command in the failed state with the cause recorded, so
// the queue never silently holds commands in executed forever.
func (srv *commandService) Acknowledge(ctx context.Context, commandID uuid.UUID) (*entity.DeviceCommand, error) {
	var command *entity.DeviceCommand
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCommandRepository().FindCommandByID(ctx, commandID)
		if err != nil {
			if errors.Is(err, repository.ErrCommandNotFound) {
				return errors.Wrap(domainerrors.ErrCommandNotFound, "command not found")
			}

			return errors.Wrap(err, "failed to find command")
		}
		command = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if command.Status != entity.CommandStatusExecuted {
		return nil, errors.Wrap(domainerrors.ErrCommandNotExecuted,
			fmt.Sprintf("command %s is %s", command.ID, command.Status))
	}

	sideEffectErr := srv.applySideEffect(ctx, command)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if sideEffectErr != nil {
			command.Status = entity.CommandStatusFailed
			command.FailureNote = sideEffectErr.Error()
		} else {
			command.Status = entity.CommandStatusSuccess
		}

		return repoFactory.NewCommandRepository().UpdateCommand(ctx, command)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record acknowledgment")
	}

	if sideEffectErr != nil {
		srv.logger.Warn("Command side effect failed",
			"command", command.ID, "name", command.Name, "error", sideEffectErr)
	}

	return command, nil
}

// applySideEffect mirrors the acknowledged command onto the local
// registration table. USERINFO and CHECK carry no side effect.
func (srv *commandService) applySideEffect(ctx context.Context, command *entity.DeviceCommand) error {
	switch command.Name {
	case entity.CommandData:
		return srv.upsertRegistration(ctx, command)
	case entity.CommandDelete:
		return srv.deleteRegistration(ctx, command)
	case entity.CommandUpdate:
		return srv.renameRegistration(ctx, command)
	case entity.CommandUserInfo, entity.CommandCheck:
		return nil
	default:
		return errors.Errorf("unknown command name %q", command.Name)
	}
}

func (srv *commandService) upsertRegistration(ctx context.Context, command *entity.DeviceCommand) error {
	pin, name := parseUserPayload(command.ExecutionLog)
	if pin == "" {
		return errors.New("payload carries no PIN")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUserRepo := repoFactory.NewDeviceUserRepository()

		found, err := deviceUserRepo.FindDeviceUsersByUserID(ctx, command.DeviceID, pin)
		if err != nil {
			return errors.Wrap(err, "failed to look up registration")
		}

		if len(found) == 0 {
			return deviceUserRepo.CreateDeviceUser(ctx, &entity.DeviceUser{
				ID:         uuid.New(),
				DeviceID:   command.DeviceID,
				UserID:     pin,
				Name:       name,
				EmployeeID: command.EmployeeID,
			})
		}

		deviceUser := found[0]
		deviceUser.Name = name
		deviceUser.EmployeeID = command.EmployeeID

		return deviceUserRepo.UpdateDeviceUser(ctx, deviceUser)
	})
}

func (srv *commandService) deleteRegistration(ctx context.Context, command *entity.DeviceCommand) error {
	pin, _ := parseUserPayload(command.ExecutionLog)
	if pin == "" {
		pin = command.PIN
	}
	if pin == "" {
		return errors.New("payload carries no PIN")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUserRepo := repoFactory.NewDeviceUserRepository()

		found, err := deviceUserRepo.FindDeviceUsersByUserID(ctx, command.DeviceID, pin)
		if err != nil {
			return errors.Wrap(err, "failed to look up registration")
		}

		for _, deviceUser := range found {
			if err := deviceUserRepo.DeleteDeviceUser(ctx, deviceUser.ID); err != nil {
				return errors.Wrap(err, "failed to delete registration")
			}
		}

		return nil
	})
}

func (srv *commandService) renameRegistration(ctx context.Context, command *entity.DeviceCommand) error {
	_, name := parseUserPayload(command.ExecutionLog)
	if name == "" {
		return errors.New("payload carries no Name")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUserRepo := repoFactory.NewDeviceUserRepository()

		found, err := deviceUserRepo.FindDeviceUsersByUserID(ctx, command.DeviceID, command.PIN)
		if err != nil {
			return errors.Wrap(err, "failed to look up registration")
		}
		if len(found) == 0 {
			return errors.Wrap(repository.ErrDeviceUserNotFound, "no registration matches the command pin")
		}

		deviceUser := found[0]
		deviceUser.Name = name

		return deviceUserRepo.UpdateDeviceUser(ctx, deviceUser)
	})
}

// ListCommands lists a device's commands, most recent first.
func (srv *commandService) ListCommands(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceCommand, error) {
	var commands []*entity.DeviceCommand
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCommandRepository().FindCommandsByDevice(ctx, deviceID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list commands")
		}
		commands = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list commands")
	}

	return commands, nil
}

func (srv *commandService) findEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return employee, nil
}

// parseUserPayload extracts the PIN and Name key-value pairs from a command
// payload ("C:<id>:DATA USER PIN=101\tName=Alice\t..."). Values run to the
// next tab so names may contain spaces.
func parseUserPayload(payload string) (pin, name string) {
	payload = strings.TrimSuffix(payload, "\n")
	for _, field := range strings.Split(payload, "\t") {
		// The first field still carries the "C:<id>:DATA USER " prefix, so
		// key lookups scan for the last space-delimited token.
		if idx := strings.LastIndex(field, " "); idx >= 0 && strings.Contains(field[idx+1:], "=") {
			field = field[idx+1:]
		}

		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "PIN":
			pin = value
		case "Name":
			name = value
		}
	}

	return pin, name
}
