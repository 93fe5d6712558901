package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AttendanceHandlerParams holds dependencies for AttendanceHandler, injected by Fx.
type AttendanceHandlerParams struct {
	fx.In

	AttendanceUC usecase.AttendanceUsecase
	Logger       *slog.Logger
}

// AttendanceHandler holds dependencies for attendance-related handlers
type AttendanceHandler struct {
	attendanceUC usecase.AttendanceUsecase
	logger       *slog.Logger
}

// NewAttendanceHandler is the constructor for AttendanceHandler
func NewAttendanceHandler(params AttendanceHandlerParams) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUC: params.AttendanceUC,
		logger:       params.Logger,
	}
}

// ListAttendances handles listing an employee's attendance records
func (h *AttendanceHandler) ListAttendances(c echo.Context) error {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Employee ID must be a valid UUID")
	}

	limit, err := limitParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	attendances, err := h.attendanceUC.GetAttendances(c.Request().Context(), employeeID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attendances)
}

// DeleteAttendance removes an attendance record and releases its punch logs
func (h *AttendanceHandler) DeleteAttendance(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ATTENDANCE_ID", "Attendance ID must be a valid UUID")
	}

	if err := h.attendanceUC.DeleteAttendance(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListPunchLogs handles listing an employee's punch logs
func (h *AttendanceHandler) ListPunchLogs(c echo.Context) error {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Employee ID must be a valid UUID")
	}

	limit, err := limitParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	logs, err := h.attendanceUC.GetPunchLogs(c.Request().Context(), employeeID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// DeletePunchLog removes a punch log that has not been consumed by attendance
func (h *AttendanceHandler) DeletePunchLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PUNCH_LOG_ID", "Punch log ID must be a valid UUID")
	}

	if err := h.attendanceUC.DeletePunchLog(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, strconv.ErrSyntax
	}

	return limit, nil
}
