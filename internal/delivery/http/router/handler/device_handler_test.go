package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeclock/internal/delivery/http/validator"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	mockusecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeviceHandlerForTest(t *testing.T) (*DeviceHandler, *mockusecase.MockDeviceUsecase, *mockusecase.MockSyncUsecase, *mockusecase.MockCommandUsecase) {
	deviceUC := mockusecase.NewMockDeviceUsecase(t)
	syncUC := mockusecase.NewMockSyncUsecase(t)
	commandUC := mockusecase.NewMockCommandUsecase(t)

	h := &DeviceHandler{
		deviceUC:  deviceUC,
		syncUC:    syncUC,
		commandUC: commandUC,
		logger:    slog.Default(),
	}

	return h, deviceUC, syncUC, commandUC
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestDeviceHandler_CreateDevice(t *testing.T) {
	h, deviceUC, _, _ := newDeviceHandlerForTest(t)

	deviceUC.EXPECT().CreateDevice(mock.Anything, mock.MatchedBy(func(input *usecase.DeviceInput) bool {
		return input.Name == "lobby" && input.Timezone == "Asia/Kolkata"
	})).Return(&entity.Device{ID: uuid.New(), Name: "lobby"}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices",
		`{"name":"lobby","ip_address":"10.0.0.5","port":4370,"timezone":"Asia/Kolkata"}`)

	err := h.CreateDevice(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "lobby")
}

func TestDeviceHandler_CreateDevice_ValidationError(t *testing.T) {
	h, _, _, _ := newDeviceHandlerForTest(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"ip_address":"10.0.0.5"}`)

	err := h.CreateDevice(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDeviceHandler_GetDevice_InvalidID(t *testing.T) {
	h, _, _, _ := newDeviceHandlerForTest(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetDevice(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DEVICE_ID")
}

func TestDeviceHandler_GetDevice_NotFound(t *testing.T) {
	h, deviceUC, _, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	deviceUC.EXPECT().GetDevice(mock.Anything, deviceID).
		Return(nil, domainerrors.ErrNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.GetDevice(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestDeviceHandler_ListDevices(t *testing.T) {
	h, deviceUC, _, _ := newDeviceHandlerForTest(t)

	deviceUC.EXPECT().ListDevices(mock.Anything).Return([]*entity.Device{
		{ID: uuid.New(), Name: "lobby"},
		{ID: uuid.New(), Name: "warehouse"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices", "")

	err := h.ListDevices(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "warehouse")
}

func TestDeviceHandler_CheckConnection(t *testing.T) {
	h, _, syncUC, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	syncUC.EXPECT().CheckConnection(mock.Anything, deviceID).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices/"+deviceID.String()+"/check-connection", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.CheckConnection(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "connected")
}

func TestDeviceHandler_CheckConnection_Failure(t *testing.T) {
	h, _, syncUC, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	syncUC.EXPECT().CheckConnection(mock.Anything, deviceID).
		Return(domainerrors.ErrConnectionFailed)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices/"+deviceID.String()+"/check-connection", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.CheckConnection(c)
	assert.NoError(t, err)
	assert.Equal(t, domainerrors.ErrConnectionFailed.HTTPCode(), rec.Code)
}

func TestDeviceHandler_PullAttendance(t *testing.T) {
	h, _, syncUC, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	syncUC.EXPECT().PullAttendance(mock.Anything, deviceID).Return(&usecase.ProcessResult{
		Logs: []*entity.PunchLog{{ID: uuid.New()}},
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices/"+deviceID.String()+"/pull", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.PullAttendance(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_ListCommands_InvalidLimit(t *testing.T) {
	h, _, _, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/commands?limit=nope", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.ListCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LIMIT")
}

func TestDeviceHandler_ListCommands(t *testing.T) {
	h, _, _, commandUC := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	commandUC.EXPECT().ListCommands(mock.Anything, deviceID, 5).Return([]*entity.DeviceCommand{
		{ID: uuid.New(), Name: entity.CommandUserInfo},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/commands?limit=5", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.ListCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_QueueExportEmployee(t *testing.T) {
	h, _, _, commandUC := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	employeeID := uuid.New()
	commandUC.EXPECT().QueueExportEmployee(mock.Anything, deviceID, employeeID).
		Return(&entity.DeviceCommand{ID: uuid.New(), Name: entity.CommandData}, nil)

	c, rec := newTestContext(http.MethodPost,
		"/api/v1/devices/"+deviceID.String()+"/commands/export-employee",
		`{"employee_id":"`+employeeID.String()+`"}`)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.QueueExportEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_QueueExportEmployee_MissingEmployee(t *testing.T) {
	h, _, _, _ := newDeviceHandlerForTest(t)

	deviceID := uuid.New()
	c, rec := newTestContext(http.MethodPost,
		"/api/v1/devices/"+deviceID.String()+"/commands/export-employee", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	err := h.QueueExportEmployee(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
