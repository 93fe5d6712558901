package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmployeeNotFound is returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the interface for the employee master data the
// attendance flow references.
type EmployeeRepository interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, employee *entity.Employee) error

	// FindEmployeeByID retrieves an employee by their unique ID.
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindAllEmployees retrieves every employee.
	FindAllEmployees(ctx context.Context) ([]*entity.Employee, error)

	// FindEmployeesWithoutDeviceUser retrieves employees that have no
	// registration on the given device.
	FindEmployeesWithoutDeviceUser(ctx context.Context, deviceID uuid.UUID) ([]*entity.Employee, error)
}
