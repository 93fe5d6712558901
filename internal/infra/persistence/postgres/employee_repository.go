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

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// CreateEmployee persists a new employee.
func (repo *employeeRepository) CreateEmployee(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("employee code already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// FindEmployeeByID retrieves an employee by their unique ID.
func (repo *employeeRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindAllEmployees retrieves every employee.
func (repo *employeeRepository) FindAllEmployees(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// FindEmployeesWithoutDeviceUser retrieves employees that have no
// registration on the given device.
func (repo *employeeRepository) FindEmployeesWithoutDeviceUser(ctx context.Context, deviceID uuid.UUID) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	registered := repo.db.
		Model(&model.DeviceUserModel{}).
		Select("employee_id").
		Where("device_id = ? AND employee_id IS NOT NULL", deviceID)

	if err := repo.db.WithContext(ctx).
		Where("id NOT IN (?)", registered).
		Order("name ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employees without device user")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// --- Mapper Functions ---

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
