package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	mockusecase "timeclock/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAttendanceHandlerForTest(t *testing.T) (*AttendanceHandler, *mockusecase.MockAttendanceUsecase) {
	attendanceUC := mockusecase.NewMockAttendanceUsecase(t)

	h := &AttendanceHandler{
		attendanceUC: attendanceUC,
		logger:       slog.Default(),
	}

	return h, attendanceUC
}

func TestAttendanceHandler_ListAttendances(t *testing.T) {
	h, attendanceUC := newAttendanceHandlerForTest(t)

	employeeID := uuid.New()
	checkIn := time.Date(2024, 3, 11, 3, 30, 0, 0, time.UTC)
	attendanceUC.EXPECT().GetAttendances(mock.Anything, employeeID, 10).
		Return([]*entity.Attendance{
			{ID: uuid.New(), EmployeeID: employeeID, CheckIn: checkIn},
		}, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/employees/"+employeeID.String()+"/attendances?limit=10", "")
	c.SetParamNames("id")
	c.SetParamValues(employeeID.String())

	err := h.ListAttendances(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_ListAttendances_DefaultLimit(t *testing.T) {
	h, attendanceUC := newAttendanceHandlerForTest(t)

	employeeID := uuid.New()
	attendanceUC.EXPECT().GetAttendances(mock.Anything, employeeID, 0).
		Return([]*entity.Attendance{}, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/employees/"+employeeID.String()+"/attendances", "")
	c.SetParamNames("id")
	c.SetParamValues(employeeID.String())

	err := h.ListAttendances(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_DeleteAttendance(t *testing.T) {
	h, attendanceUC := newAttendanceHandlerForTest(t)

	attendanceID := uuid.New()
	attendanceUC.EXPECT().DeleteAttendance(mock.Anything, attendanceID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/attendances/"+attendanceID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(attendanceID.String())

	err := h.DeleteAttendance(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")
}

func TestAttendanceHandler_DeletePunchLog_Calculated(t *testing.T) {
	h, attendanceUC := newAttendanceHandlerForTest(t)

	punchLogID := uuid.New()
	attendanceUC.EXPECT().DeletePunchLog(mock.Anything, punchLogID).
		Return(domainerrors.ErrDeletionGuard)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/punch-logs/"+punchLogID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(punchLogID.String())

	err := h.DeletePunchLog(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PUNCH_LOG_CALCULATED")
}

func TestAttendanceHandler_ListPunchLogs(t *testing.T) {
	h, attendanceUC := newAttendanceHandlerForTest(t)

	employeeID := uuid.New()
	attendanceUC.EXPECT().GetPunchLogs(mock.Anything, employeeID, 0).
		Return([]*entity.PunchLog{
			{ID: uuid.New(), Status: entity.PunchStatusCheckIn},
		}, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/employees/"+employeeID.String()+"/punch-logs", "")
	c.SetParamNames("id")
	c.SetParamValues(employeeID.String())

	err := h.ListPunchLogs(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
