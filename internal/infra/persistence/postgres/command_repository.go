package postgres

import (
	"context"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commandRepository implements the repository.CommandRepository interface.
type commandRepository struct {
	db *gorm.DB
}

// NewCommandRepository is the constructor for commandRepository.
func NewCommandRepository(db *gorm.DB) repository.CommandRepository {
	return &commandRepository{
		db: db,
	}
}

// CreateCommand persists a new queued command.
func (repo *commandRepository) CreateCommand(ctx context.Context, command *entity.DeviceCommand) error {
	commandM := fromCommandDomain(command)

	if err := repo.db.WithContext(ctx).Create(commandM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create command")
	}

	command.ID = commandM.ID
	command.CreatedAt = commandM.CreatedAt
	command.UpdatedAt = commandM.UpdatedAt

	return nil
}

// FindCommandByID retrieves a command by its unique ID.
func (repo *commandRepository) FindCommandByID(ctx context.Context, id uuid.UUID) (*entity.DeviceCommand, error) {
	var commandM model.DeviceCommandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommandNotFound
		}

		return nil, errors.Wrap(err, "failed to find command by ID")
	}

	return toCommandDomain(&commandM), nil
}

// FindPendingCommands retrieves a device's pending commands in creation order.
func (repo *commandRepository) FindPendingCommands(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceCommand, error) {
	var commandModels []*model.DeviceCommandModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND status = ?", deviceID, string(entity.CommandStatusPending)).
		Order("created_at ASC").
		Find(&commandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending commands")
	}

	commands := make([]*entity.DeviceCommand, 0, len(commandModels))
	for _, commandM := range commandModels {
		commands = append(commands, toCommandDomain(commandM))
	}

	return commands, nil
}

// FindPendingCommandByName retrieves a device's pending command with the
// given name, if one is already queued.
func (repo *commandRepository) FindPendingCommandByName(ctx context.Context, deviceID uuid.UUID, name entity.CommandName) (*entity.DeviceCommand, error) {
	var commandM model.DeviceCommandModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND name = ? AND status = ?", deviceID, string(name), string(entity.CommandStatusPending)).
		Order("created_at ASC").
		First(&commandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommandNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending command by name")
	}

	return toCommandDomain(&commandM), nil
}

// FindCommandsByDevice retrieves a device's commands ordered by creation descending.
func (repo *commandRepository) FindCommandsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceCommand, error) {
	var commandModels []*model.DeviceCommandModel

	query := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&commandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find commands by device")
	}

	commands := make([]*entity.DeviceCommand, 0, len(commandModels))
	for _, commandM := range commandModels {
		commands = append(commands, toCommandDomain(commandM))
	}

	return commands, nil
}

// UpdateCommand persists changes to an existing command.
func (repo *commandRepository) UpdateCommand(ctx context.Context, command *entity.DeviceCommand) error {
	commandM := fromCommandDomain(command)

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceCommandModel{}).
		Where("id = ?", commandM.ID).
		Select("status", "execution_log", "pin", "failure_note").
		Updates(commandM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update command")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommandNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCommandDomain converts a GORM DeviceCommandModel to a domain DeviceCommand entity.
func toCommandDomain(data *model.DeviceCommandModel) *entity.DeviceCommand {
	if data == nil {
		return nil
	}

	return &entity.DeviceCommand{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Name:         entity.CommandName(data.Name),
		Status:       entity.CommandStatus(data.Status),
		ExecutionLog: data.ExecutionLog,
		EmployeeID:   data.EmployeeID,
		PIN:          data.PIN,
		FailureNote:  data.FailureNote,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCommandDomain converts a domain DeviceCommand entity to a GORM DeviceCommandModel.
func fromCommandDomain(data *entity.DeviceCommand) *model.DeviceCommandModel {
	if data == nil {
		return nil
	}

	return &model.DeviceCommandModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Name:         string(data.Name),
		Status:       string(data.Status),
		ExecutionLog: data.ExecutionLog,
		EmployeeID:   data.EmployeeID,
		PIN:          data.PIN,
		FailureNote:  data.FailureNote,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
