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
	"gorm.io/gorm/clause"
)

// fingerprintRepository implements the repository.FingerprintRepository interface.
type fingerprintRepository struct {
	db *gorm.DB
}

// NewFingerprintRepository is the constructor for fingerprintRepository.
func NewFingerprintRepository(db *gorm.DB) repository.FingerprintRepository {
	return &fingerprintRepository{
		db: db,
	}
}

// UpsertTemplate stores a template for (device, device user), replacing any
// existing one.
func (repo *fingerprintRepository) UpsertTemplate(ctx context.Context, template *entity.FingerprintTemplate) error {
	templateM := fromFingerprintDomain(template)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "device_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"template", "updated_at"}),
		}).
		Create(templateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device or device user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert fingerprint template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// FindTemplate retrieves the template for (device, device user). A missing
// template yields nil, not an error.
func (repo *fingerprintRepository) FindTemplate(ctx context.Context, deviceID, deviceUserID uuid.UUID) (*entity.FingerprintTemplate, error) {
	var templateM model.FingerprintTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND device_user_id = ?", deviceID, deviceUserID).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find fingerprint template")
	}

	return toFingerprintDomain(&templateM), nil
}

// FindTemplatesByDevice retrieves all templates stored for a device.
func (repo *fingerprintRepository) FindTemplatesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.FingerprintTemplate, error) {
	var templateModels []*model.FingerprintTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find fingerprint templates by device")
	}

	templates := make([]*entity.FingerprintTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toFingerprintDomain(templateM))
	}

	return templates, nil
}

// --- Mapper Functions ---

// toFingerprintDomain converts a GORM FingerprintTemplateModel to a domain FingerprintTemplate entity.
func toFingerprintDomain(data *model.FingerprintTemplateModel) *entity.FingerprintTemplate {
	if data == nil {
		return nil
	}

	return &entity.FingerprintTemplate{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		DeviceUserID: data.DeviceUserID,
		Template:     data.Template,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromFingerprintDomain converts a domain FingerprintTemplate entity to a GORM FingerprintTemplateModel.
func fromFingerprintDomain(data *entity.FingerprintTemplate) *model.FingerprintTemplateModel {
	if data == nil {
		return nil
	}

	return &model.FingerprintTemplateModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		DeviceUserID: data.DeviceUserID,
		Template:     data.Template,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
