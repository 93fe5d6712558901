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

// operationLogRepository implements the repository.OperationLogRepository interface.
type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository is the constructor for operationLogRepository.
func NewOperationLogRepository(db *gorm.DB) repository.OperationLogRepository {
	return &operationLogRepository{
		db: db,
	}
}

// CreateOperationLog persists a new device event.
func (repo *operationLogRepository) CreateOperationLog(ctx context.Context, log *entity.OperationLog) error {
	logM := fromOperationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operation log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindOperationLogsByDevice retrieves a device's events ordered by event time descending.
func (repo *operationLogRepository) FindOperationLogsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.OperationLog, error) {
	var logModels []*model.OperationLogModel

	query := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("op_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find operation logs by device")
	}

	logs := make([]*entity.OperationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toOperationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toOperationLogDomain converts a GORM OperationLogModel to a domain OperationLog entity.
func toOperationLogDomain(data *model.OperationLogModel) *entity.OperationLog {
	if data == nil {
		return nil
	}

	return &entity.OperationLog{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		OpStamp:   data.OpStamp,
		Code:      data.Code,
		Operator:  data.Operator,
		OpTime:    data.OpTime.UTC(),
		Value1:    data.Value1,
		Value2:    data.Value2,
		Value3:    data.Value3,
		Reserved:  data.Reserved,
		CreatedAt: data.CreatedAt,
	}
}

// fromOperationLogDomain converts a domain OperationLog entity to a GORM OperationLogModel.
func fromOperationLogDomain(data *entity.OperationLog) *model.OperationLogModel {
	if data == nil {
		return nil
	}

	return &model.OperationLogModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		OpStamp:   data.OpStamp,
		Code:      data.Code,
		Operator:  data.Operator,
		OpTime:    data.OpTime.UTC(),
		Value1:    data.Value1,
		Value2:    data.Value2,
		Value3:    data.Value3,
		Reserved:  data.Reserved,
		CreatedAt: data.CreatedAt,
	}
}
