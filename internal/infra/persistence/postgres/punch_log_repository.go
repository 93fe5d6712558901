package postgres

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// punchLogRepository implements the repository.PunchLogRepository interface.
type punchLogRepository struct {
	db *gorm.DB
}

// NewPunchLogRepository is the constructor for punchLogRepository.
func NewPunchLogRepository(db *gorm.DB) repository.PunchLogRepository {
	return &punchLogRepository{
		db: db,
	}
}

// CreatePunchLog persists a new punch log.
func (repo *punchLogRepository) CreatePunchLog(ctx context.Context, log *entity.PunchLog) error {
	logM := fromPunchLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("punch already recorded for this user and time")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create punch log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// FindPunchLogByID retrieves a punch log by its unique ID.
func (repo *punchLogRepository) FindPunchLogByID(ctx context.Context, id uuid.UUID) (*entity.PunchLog, error) {
	var logM model.PunchLogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPunchLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find punch log by ID")
	}

	return toPunchLogDomain(&logM), nil
}

// FindPunchLogByUserAndTime retrieves the punch log for a device user at an
// exact UTC timestamp, if one exists.
func (repo *punchLogRepository) FindPunchLogByUserAndTime(ctx context.Context, deviceUserID uuid.UUID, punchTime time.Time) (*entity.PunchLog, error) {
	var logM model.PunchLogModel

	if err := repo.db.WithContext(ctx).
		Where("device_user_id = ? AND punch_time = ?", deviceUserID, punchTime).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPunchLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find punch log by user and time")
	}

	return toPunchLogDomain(&logM), nil
}

// FindPunchLogsByEmployee retrieves an employee's punch logs ordered by punch
// time descending.
func (repo *punchLogRepository) FindPunchLogsByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.PunchLog, error) {
	var logModels []*model.PunchLogModel

	query := repo.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("punch_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find punch logs by employee")
	}

	logs := make([]*entity.PunchLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toPunchLogDomain(logM))
	}

	return logs, nil
}

// FindPunchLogsByEmployeeAndTimes retrieves an employee's punch logs whose
// punch time matches any of the given instants.
func (repo *punchLogRepository) FindPunchLogsByEmployeeAndTimes(ctx context.Context, employeeID uuid.UUID, times []time.Time) ([]*entity.PunchLog, error) {
	if len(times) == 0 {
		return []*entity.PunchLog{}, nil
	}

	var logModels []*model.PunchLogModel

	if err := repo.db.WithContext(ctx).
		Where("employee_id = ? AND punch_time IN ?", employeeID, times).
		Order("punch_time ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find punch logs by employee and times")
	}

	logs := make([]*entity.PunchLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toPunchLogDomain(logM))
	}

	return logs, nil
}

// UpdatePunchLog persists changes to an existing punch log.
func (repo *punchLogRepository) UpdatePunchLog(ctx context.Context, log *entity.PunchLog) error {
	logM := fromPunchLogDomain(log)

	result := repo.db.WithContext(ctx).
		Model(&model.PunchLogModel{}).
		Where("id = ?", logM.ID).
		Select("employee_id", "status", "code", "number", "sequence", "device_name", "calculated").
		Updates(logM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update punch log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPunchLogNotFound
	}

	return nil
}

// SetCalculated flips the calculated flag on a punch log.
func (repo *punchLogRepository) SetCalculated(ctx context.Context, id uuid.UUID, calculated bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PunchLogModel{}).
		Where("id = ?", id).
		Update("calculated", calculated)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set punch log calculated flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPunchLogNotFound
	}

	return nil
}

// DeletePunchLog removes a punch log. Calculated logs are refused so the
// attendance records derived from them stay consistent.
func (repo *punchLogRepository) DeletePunchLog(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND calculated = ?", id, false).
		Delete(&model.PunchLogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete punch log")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a calculated one.
		var logM model.PunchLogModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", id).
			First(&logM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrPunchLogNotFound
			}

			return errors.Wrap(err, "failed to check punch log before delete")
		}

		return repository.ErrPunchLogCalculated
	}

	return nil
}

// --- Mapper Functions ---

// toPunchLogDomain converts a GORM PunchLogModel to a domain PunchLog entity.
func toPunchLogDomain(data *model.PunchLogModel) *entity.PunchLog {
	if data == nil {
		return nil
	}

	return &entity.PunchLog{
		ID:           data.ID,
		DeviceUserID: data.DeviceUserID,
		EmployeeID:   data.EmployeeID,
		PunchTime:    data.PunchTime.UTC(),
		Status:       entity.PunchStatus(data.Status),
		Code:         data.Code,
		Number:       data.Number,
		Sequence:     data.Sequence,
		DeviceName:   data.DeviceName,
		Calculated:   data.Calculated,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPunchLogDomain converts a domain PunchLog entity to a GORM PunchLogModel.
func fromPunchLogDomain(data *entity.PunchLog) *model.PunchLogModel {
	if data == nil {
		return nil
	}

	return &model.PunchLogModel{
		ID:           data.ID,
		DeviceUserID: data.DeviceUserID,
		EmployeeID:   data.EmployeeID,
		PunchTime:    data.PunchTime.UTC(),
		Status:       string(data.Status),
		Code:         data.Code,
		Number:       data.Number,
		Sequence:     data.Sequence,
		DeviceName:   data.DeviceName,
		Calculated:   data.Calculated,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
