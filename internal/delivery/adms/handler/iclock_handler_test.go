package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	mockusecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newIClockHandlerForTest(t *testing.T) (*IClockHandler, *mockusecase.MockADMSUsecase, *mockusecase.MockCommandUsecase) {
	admsUC := mockusecase.NewMockADMSUsecase(t)
	commandUC := mockusecase.NewMockCommandUsecase(t)

	h := &IClockHandler{
		admsUC:    admsUC,
		commandUC: commandUC,
		logger:    slog.Default(),
	}

	return h, admsUC, commandUC
}

func newPushContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testPushDevice() *entity.Device {
	return &entity.Device{
		ID:           uuid.New(),
		Name:         "lobby",
		Timezone:     "UTC",
		IsADMS:       true,
		SerialNumber: "ZKT4560001",
		PollDelay:    30,
		ErrorDelay:   60,
	}
}

func TestIClockHandler_Handshake(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)

	c, rec := newPushContext(http.MethodGet, "/iclock/cdata?SN=ZKT4560001&options=all", "")

	err := h.Handshake(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "GET OPTION FROM: ZKT4560001")
	assert.Contains(t, body, "ErrorDelay=60")
	assert.Contains(t, body, "Delay=30")
	assert.Contains(t, body, "TimeZone=0")
	assert.Contains(t, body, "Realtime=1")
}

func TestIClockHandler_Handshake_UnknownSerial(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	admsUC.EXPECT().Handshake(mock.Anything, "BOGUS").
		Return(nil, domainerrors.ErrNotFound)

	c, rec := newPushContext(http.MethodGet, "/iclock/cdata?SN=BOGUS", "")

	err := h.Handshake(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIClockHandler_Handshake_MissingSerial(t *testing.T) {
	h, _, _ := newIClockHandlerForTest(t)

	c, rec := newPushContext(http.MethodGet, "/iclock/cdata", "")

	err := h.Handshake(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIClockHandler_UploadData_Attlog(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	payload := "101 2024-03-11 09:01:00 0 1\n101 2024-03-11 18:02:00 0 2\n"

	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	admsUC.EXPECT().IngestAttendance(mock.Anything, device, payload).
		Return(&usecase.ProcessResult{
			Logs: []*entity.PunchLog{{ID: uuid.New()}, {ID: uuid.New()}},
		}, nil)

	c, rec := newPushContext(http.MethodPost, "/iclock/cdata?SN=ZKT4560001&table=ATTLOG", payload)

	err := h.UploadData(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK: 2", rec.Body.String())
}

func TestIClockHandler_UploadData_Operlog(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	payload := "USER PIN=101\tName=Asha Rao\tPri=0\n"

	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	admsUC.EXPECT().IngestOperations(mock.Anything, device, payload).Return(nil)

	c, rec := newPushContext(http.MethodPost, "/iclock/cdata?SN=ZKT4560001&table=OPERLOG", payload)

	err := h.UploadData(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestIClockHandler_UploadData_UnknownTable(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)

	c, rec := newPushContext(http.MethodPost, "/iclock/cdata?SN=ZKT4560001&table=ATTPHOTO", "blob")

	err := h.UploadData(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestIClockHandler_FetchCommands(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	commandID := uuid.New()
	payload := "C:" + commandID.String() + ":DATA USER PIN=204\tName=Asha Rao\n"

	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	admsUC.EXPECT().CommandResponse(mock.Anything, device).Return(payload, nil)

	c, rec := newPushContext(http.MethodGet, "/iclock/getrequest?SN=ZKT4560001", "")

	err := h.FetchCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.String())
}

func TestIClockHandler_FetchCommands_Empty(t *testing.T) {
	h, admsUC, _ := newIClockHandlerForTest(t)

	device := testPushDevice()
	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	admsUC.EXPECT().CommandResponse(mock.Anything, device).Return("", nil)

	c, rec := newPushContext(http.MethodGet, "/iclock/getrequest?SN=ZKT4560001", "")

	err := h.FetchCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestIClockHandler_AcknowledgeCommands(t *testing.T) {
	h, admsUC, commandUC := newIClockHandlerForTest(t)

	device := testPushDevice()
	firstID := uuid.New()
	secondID := uuid.New()
	body := "ID=" + firstID.String() + "&Return=0&CMD=DATA\n" +
		"ID=" + secondID.String() + "&Return=0&CMD=DEL\n"

	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	commandUC.EXPECT().Acknowledge(mock.Anything, firstID).
		Return(&entity.DeviceCommand{ID: firstID, Status: entity.CommandStatusSuccess}, nil)
	commandUC.EXPECT().Acknowledge(mock.Anything, secondID).
		Return(&entity.DeviceCommand{ID: secondID, Status: entity.CommandStatusSuccess}, nil)

	c, rec := newPushContext(http.MethodPost, "/iclock/devicecmd?SN=ZKT4560001", body)

	err := h.AcknowledgeCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestIClockHandler_AcknowledgeCommands_SkipsMalformedLines(t *testing.T) {
	h, admsUC, commandUC := newIClockHandlerForTest(t)

	device := testPushDevice()
	goodID := uuid.New()
	body := "ID=not-a-uuid&Return=0&CMD=DATA\n" +
		"ID=" + goodID.String() + "&Return=0&CMD=DATA\n"

	admsUC.EXPECT().Handshake(mock.Anything, "ZKT4560001").Return(device, nil)
	commandUC.EXPECT().Acknowledge(mock.Anything, goodID).
		Return(&entity.DeviceCommand{ID: goodID, Status: entity.CommandStatusSuccess}, nil)

	c, rec := newPushContext(http.MethodPost, "/iclock/devicecmd?SN=ZKT4560001", body)

	err := h.AcknowledgeCommands(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
