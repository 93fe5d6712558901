package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// EmployeeInput represents employee master data supplied by the caller.
type EmployeeInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// EmployeeUsecase defines the minimal employee management surface the
// attendance flows need.
type EmployeeUsecase interface {
	// CreateEmployee registers an employee.
	CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error)

	// GetEmployee retrieves one employee.
	GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// ListEmployees retrieves every employee.
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
}
