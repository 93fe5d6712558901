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

// deviceUserRepository implements the repository.DeviceUserRepository interface.
type deviceUserRepository struct {
	db *gorm.DB
}

// NewDeviceUserRepository is the constructor for deviceUserRepository.
func NewDeviceUserRepository(db *gorm.DB) repository.DeviceUserRepository {
	return &deviceUserRepository{
		db: db,
	}
}

// CreateDeviceUser persists a new device user registration.
func (repo *deviceUserRepository) CreateDeviceUser(ctx context.Context, user *entity.DeviceUser) error {
	userM := fromDeviceUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device or employee reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindDeviceUserByID retrieves a registration by its unique ID.
func (repo *deviceUserRepository) FindDeviceUserByID(ctx context.Context, id uuid.UUID) (*entity.DeviceUser, error) {
	var userM model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find device user by ID")
	}

	return toDeviceUserDomain(&userM), nil
}

// FindDeviceUsersByUserID retrieves every registration on a device that
// carries the given textual user id.
func (repo *deviceUserRepository) FindDeviceUsersByUserID(ctx context.Context, deviceID uuid.UUID, userID string) ([]*entity.DeviceUser, error) {
	var userModels []*model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND user_id = ?", deviceID, userID).
		Order("uid ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device users by user ID")
	}

	users := make([]*entity.DeviceUser, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toDeviceUserDomain(userM))
	}

	return users, nil
}

// FindDeviceUsersByDevice retrieves all registrations on a device.
func (repo *deviceUserRepository) FindDeviceUsersByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceUser, error) {
	var userModels []*model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("uid ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device users by device")
	}

	users := make([]*entity.DeviceUser, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toDeviceUserDomain(userM))
	}

	return users, nil
}

// FindDeviceUserByEmployee retrieves the registration linking an employee to
// a device, if any.
func (repo *deviceUserRepository) FindDeviceUserByEmployee(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceUser, error) {
	var userM model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND employee_id = ?", deviceID, employeeID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find device user by employee")
	}

	return toDeviceUserDomain(&userM), nil
}

// UpdateDeviceUser persists changes to an existing registration.
func (repo *deviceUserRepository) UpdateDeviceUser(ctx context.Context, user *entity.DeviceUser) error {
	userM := fromDeviceUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceUserModel{}).
		Where("id = ?", userM.ID).
		Select("uid", "user_id", "name", "employee_id").
		Updates(userM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceUserNotFound
	}

	return nil
}

// DeleteDeviceUser removes a registration by its ID.
func (repo *deviceUserRepository) DeleteDeviceUser(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceUserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceUserDomain converts a GORM DeviceUserModel to a domain DeviceUser entity.
func toDeviceUserDomain(data *model.DeviceUserModel) *entity.DeviceUser {
	if data == nil {
		return nil
	}

	return &entity.DeviceUser{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		UID:        data.UID,
		UserID:     data.UserID,
		Name:       data.Name,
		EmployeeID: data.EmployeeID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceUserDomain converts a domain DeviceUser entity to a GORM DeviceUserModel.
func fromDeviceUserDomain(data *entity.DeviceUser) *model.DeviceUserModel {
	if data == nil {
		return nil
	}

	return &model.DeviceUserModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		UID:        data.UID,
		UserID:     data.UserID,
		Name:       data.Name,
		EmployeeID: data.EmployeeID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
