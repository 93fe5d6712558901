package handler

import (
	"log/slog"
	"net/http"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
	SyncUC     usecase.SyncUsecase
	Logger     *slog.Logger
}

// EmployeeHandler holds dependencies for employee-related handlers
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	syncUC     usecase.SyncUsecase
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: params.EmployeeUC,
		syncUC:     params.SyncUC,
		logger:     params.Logger,
	}
}

// EmployeeRequest represents the request body for creating an employee
type EmployeeRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// CreateEmployee handles employee registration
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	employee, err := h.employeeUC.CreateEmployee(c.Request().Context(), &usecase.EmployeeInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, employee)
}

// GetEmployee handles retrieving one employee
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Employee ID must be a valid UUID")
	}

	employee, err := h.employeeUC.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, employee)
}

// ListEmployees handles retrieving all employees
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.employeeUC.ListEmployees(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, employees)
}

// RegisterOnDevices makes sure the employee is registered on every device
func (h *EmployeeHandler) RegisterOnDevices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Employee ID must be a valid UUID")
	}

	outcomes, err := h.syncUC.RegisterEmployeeOnDevices(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcomes)
}
