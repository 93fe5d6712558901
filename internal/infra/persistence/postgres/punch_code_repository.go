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

// punchCodeRepository implements the repository.PunchCodeRepository interface.
type punchCodeRepository struct {
	db *gorm.DB
}

// NewPunchCodeRepository is the constructor for punchCodeRepository.
func NewPunchCodeRepository(db *gorm.DB) repository.PunchCodeRepository {
	return &punchCodeRepository{
		db: db,
	}
}

// CreateMapping persists a new punch-code mapping.
func (repo *punchCodeRepository) CreateMapping(ctx context.Context, mapping *entity.PunchCodeMapping) error {
	mappingM := fromPunchCodeDomain(mapping)

	if err := repo.db.WithContext(ctx).Create(mappingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("punch code already mapped for this device")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create punch code mapping")
	}

	mapping.ID = mappingM.ID
	mapping.CreatedAt = mappingM.CreatedAt
	mapping.UpdatedAt = mappingM.UpdatedAt

	return nil
}

// FindMappingByCode retrieves the mapping for a raw status code on a device.
// An unmapped code yields a nil mapping, not an error.
func (repo *punchCodeRepository) FindMappingByCode(ctx context.Context, deviceID uuid.UUID, code int) (*entity.PunchCodeMapping, error) {
	var mappingM model.PunchCodeMappingModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND code = ?", deviceID, code).
		First(&mappingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find punch code mapping")
	}

	return toPunchCodeDomain(&mappingM), nil
}

// FindMappingsByDevice retrieves all mappings configured for a device.
func (repo *punchCodeRepository) FindMappingsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.PunchCodeMapping, error) {
	var mappingModels []*model.PunchCodeMappingModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("code ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find punch code mappings by device")
	}

	mappings := make([]*entity.PunchCodeMapping, 0, len(mappingModels))
	for _, mappingM := range mappingModels {
		mappings = append(mappings, toPunchCodeDomain(mappingM))
	}

	return mappings, nil
}

// DeleteMapping removes a mapping by its ID.
func (repo *punchCodeRepository) DeleteMapping(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PunchCodeMappingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete punch code mapping")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("punch code mapping not found")
	}

	return nil
}

// --- Mapper Functions ---

// toPunchCodeDomain converts a GORM PunchCodeMappingModel to a domain PunchCodeMapping entity.
func toPunchCodeDomain(data *model.PunchCodeMappingModel) *entity.PunchCodeMapping {
	if data == nil {
		return nil
	}

	return &entity.PunchCodeMapping{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Code:      data.Code,
		Activity:  entity.ActivityType(data.Activity),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPunchCodeDomain converts a domain PunchCodeMapping entity to a GORM PunchCodeMappingModel.
func fromPunchCodeDomain(data *entity.PunchCodeMapping) *model.PunchCodeMappingModel {
	if data == nil {
		return nil
	}

	return &model.PunchCodeMappingModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Code:      data.Code,
		Activity:  string(data.Activity),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
