// Package handler contains the HTTP handlers for the management API.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/domain/entity"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC  usecase.DeviceUsecase
	SyncUC    usecase.SyncUsecase
	CommandUC usecase.CommandUsecase
	Logger    *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC  usecase.DeviceUsecase
	syncUC    usecase.SyncUsecase
	commandUC usecase.CommandUsecase
	logger    *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:  params.DeviceUC,
		syncUC:    params.SyncUC,
		commandUC: params.CommandUC,
		logger:    params.Logger,
	}
}

// DeviceRequest represents the request body for creating or updating a device
type DeviceRequest struct {
	Name         string `json:"name" validate:"required"`
	IPAddress    string `json:"ip_address"`
	Port         int    `json:"port" validate:"min=0,max=65535"`
	Password     string `json:"password"`
	Timezone     string `json:"timezone" validate:"required"`
	IsADMS       bool   `json:"is_adms"`
	SerialNumber string `json:"serial_number"`
	PollDelay    int    `json:"poll_delay" validate:"min=0"`
	ErrorDelay   int    `json:"error_delay" validate:"min=0"`
}

// EmployeeTargetRequest identifies the employee a queued command acts for
type EmployeeTargetRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
}

func deviceInputFromRequest(req *DeviceRequest) *usecase.DeviceInput {
	return &usecase.DeviceInput{
		Name:         req.Name,
		IPAddress:    req.IPAddress,
		Port:         req.Port,
		Password:     req.Password,
		Timezone:     req.Timezone,
		IsADMS:       req.IsADMS,
		SerialNumber: req.SerialNumber,
		PollDelay:    req.PollDelay,
		ErrorDelay:   req.ErrorDelay,
	}
}

// CreateDevice handles device registration
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	var req DeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), deviceInputFromRequest(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UpdateDevice handles device configuration updates
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	var req DeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), id, deviceInputFromRequest(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// GetDevice handles retrieving one device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// ListDevices handles retrieving all devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUC.ListDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeleteDevice handles removing a device configuration
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetPunchCodeMappings handles listing a device's punch-code mappings
func (h *DeviceHandler) GetPunchCodeMappings(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	mappings, err := h.deviceUC.GetPunchCodeMappings(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mappings)
}

// CheckConnection probes the device and records the observed state
func (h *DeviceHandler) CheckConnection(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	if err := h.syncUC.CheckConnection(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "connected"})
}

// SynchronizeEmployees registers missing employees on the device
func (h *DeviceHandler) SynchronizeEmployees(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	outcomes, err := h.syncUC.SynchronizeEmployees(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcomes)
}

// PullAttendance pulls and reconciles one device's punches
func (h *DeviceHandler) PullAttendance(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	result, err := h.syncUC.PullAttendance(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// PullAllDevices pulls every pollable device, isolating per-device failures
func (h *DeviceHandler) PullAllDevices(c echo.Context) error {
	reports, err := h.syncUC.PullAllDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

// ListCommands lists a device's queued commands, most recent first
func (h *DeviceHandler) ListCommands(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	limit, err := limitParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	commands, err := h.commandUC.ListCommands(c.Request().Context(), id, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commands)
}

// QueueExportEmployee queues a DATA command registering an employee on the device
func (h *DeviceHandler) QueueExportEmployee(c echo.Context) error {
	return h.queueEmployeeCommand(c, h.commandUC.QueueExportEmployee)
}

// QueueDeleteUser queues a DEL command removing an employee's registration
func (h *DeviceHandler) QueueDeleteUser(c echo.Context) error {
	return h.queueEmployeeCommand(c, h.commandUC.QueueDeleteUser)
}

// QueueRenameUser queues an UPDATE command renaming an employee's registration
func (h *DeviceHandler) QueueRenameUser(c echo.Context) error {
	return h.queueEmployeeCommand(c, h.commandUC.QueueRenameUser)
}

// QueueUserInfoRequest queues a USERINFO command for the device
func (h *DeviceHandler) QueueUserInfoRequest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	command, err := h.commandUC.QueueUserInfoRequest(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, command)
}

func (h *DeviceHandler) queueEmployeeCommand(
	c echo.Context,
	queue func(ctx context.Context, deviceID, employeeID uuid.UUID) (*entity.DeviceCommand, error),
) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	var req EmployeeTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid command input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Employee ID must be a valid UUID")
	}

	command, err := queue(c.Request().Context(), deviceID, employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, command)
}
