package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	mockusecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEmployeeHandlerForTest(t *testing.T) (*EmployeeHandler, *mockusecase.MockEmployeeUsecase, *mockusecase.MockSyncUsecase) {
	employeeUC := mockusecase.NewMockEmployeeUsecase(t)
	syncUC := mockusecase.NewMockSyncUsecase(t)

	h := &EmployeeHandler{
		employeeUC: employeeUC,
		syncUC:     syncUC,
		logger:     slog.Default(),
	}

	return h, employeeUC, syncUC
}

func TestEmployeeHandler_CreateEmployee(t *testing.T) {
	h, employeeUC, _ := newEmployeeHandlerForTest(t)

	employeeUC.EXPECT().CreateEmployee(mock.Anything, &usecase.EmployeeInput{
		Name: "Asha Rao",
		Code: "EMP-042",
	}).Return(&entity.Employee{ID: uuid.New(), Name: "Asha Rao", Code: "EMP-042"}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/employees",
		`{"name":"Asha Rao","code":"EMP-042"}`)

	err := h.CreateEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMP-042")
}

func TestEmployeeHandler_CreateEmployee_MissingCode(t *testing.T) {
	h, _, _ := newEmployeeHandlerForTest(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/employees", `{"name":"Asha Rao"}`)

	err := h.CreateEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestEmployeeHandler_CreateEmployee_DuplicateCode(t *testing.T) {
	h, employeeUC, _ := newEmployeeHandlerForTest(t)

	employeeUC.EXPECT().CreateEmployee(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrConflict)

	c, rec := newTestContext(http.MethodPost, "/api/v1/employees",
		`{"name":"Asha Rao","code":"EMP-042"}`)

	err := h.CreateEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")
}

func TestEmployeeHandler_GetEmployee(t *testing.T) {
	h, employeeUC, _ := newEmployeeHandlerForTest(t)

	employeeID := uuid.New()
	employeeUC.EXPECT().GetEmployee(mock.Anything, employeeID).
		Return(&entity.Employee{ID: employeeID, Name: "Asha Rao"}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/employees/"+employeeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(employeeID.String())

	err := h.GetEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeeHandler_GetEmployee_InvalidID(t *testing.T) {
	h, _, _ := newEmployeeHandlerForTest(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/employees/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_EMPLOYEE_ID")
}

func TestEmployeeHandler_RegisterOnDevices(t *testing.T) {
	h, _, syncUC := newEmployeeHandlerForTest(t)

	employeeID := uuid.New()
	syncUC.EXPECT().RegisterEmployeeOnDevices(mock.Anything, employeeID).
		Return([]usecase.SyncOutcome{
			{Subject: "lobby"},
			{Subject: "warehouse", Reason: "connection failed"},
		}, nil)

	c, rec := newTestContext(http.MethodPost,
		"/api/v1/employees/"+employeeID.String()+"/register-devices", "")
	c.SetParamNames("id")
	c.SetParamValues(employeeID.String())

	err := h.RegisterOnDevices(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection failed")
}
