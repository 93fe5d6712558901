package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	mockRepo "timeclock/internal/mocks/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateEmployee(t *testing.T) {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewEmployeeService(employeeRepo, logger)

	ctx := context.Background()

	var created *entity.Employee
	employeeRepo.EXPECT().
		CreateEmployee(ctx, mock.AnythingOfType("*entity.Employee")).
		RunAndReturn(func(_ context.Context, employee *entity.Employee) error {
			created = employee

			return nil
		})

	employee, err := service.CreateEmployee(ctx, &usecase.EmployeeInput{Name: "  Alice ", Code: "E-17"})

	require.NoError(t, err)
	assert.Equal(t, "Alice", employee.Name)
	assert.Equal(t, "E-17", employee.Code)
	assert.Equal(t, created, employee)
}

func TestEmployeeService_CreateEmployee_RequiresName(t *testing.T) {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewEmployeeService(employeeRepo, logger)

	_, err := service.CreateEmployee(context.Background(), &usecase.EmployeeInput{Name: "   "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewEmployeeService(employeeRepo, logger)

	ctx := context.Background()
	employeeID := uuid.New()

	employeeRepo.EXPECT().
		FindEmployeeByID(ctx, employeeID).
		Return(nil, repository.ErrEmployeeNotFound)

	_, err := service.GetEmployee(ctx, employeeID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
