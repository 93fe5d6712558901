package impl

import (
	"context"
	"log/slog"
	"strings"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(employeeRepo repository.EmployeeRepository, logger *slog.Logger) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (srv *employeeService) CreateEmployee(ctx context.Context, input *usecase.EmployeeInput) (*entity.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "employee name is required")
	}

	employee := &entity.Employee{
		ID:   uuid.New(),
		Name: name,
		Code: strings.TrimSpace(input.Code),
	}
	if err := srv.employeeRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}

	return employee, nil
}

func (srv *employeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return employee, nil
}

func (srv *employeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := srv.employeeRepo.FindAllEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}
