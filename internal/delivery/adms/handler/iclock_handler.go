// Package handler contains the handlers for the device push (ADMS) channel.
// Devices speak a line-oriented plain-text protocol, so every response here
// is text, not JSON.
package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IClockHandlerParams holds dependencies for IClockHandler, injected by Fx.
type IClockHandlerParams struct {
	fx.In

	ADMSUC    usecase.ADMSUsecase
	CommandUC usecase.CommandUsecase
	Logger    *slog.Logger
}

// IClockHandler serves the /iclock endpoints the devices dial into.
type IClockHandler struct {
	admsUC    usecase.ADMSUsecase
	commandUC usecase.CommandUsecase
	logger    *slog.Logger
}

// NewIClockHandler is the constructor for IClockHandler
func NewIClockHandler(params IClockHandlerParams) *IClockHandler {
	return &IClockHandler{
		admsUC:    params.ADMSUC,
		commandUC: params.CommandUC,
		logger:    params.Logger,
	}
}

// Handshake answers the device registration poll with its transfer options.
func (h *IClockHandler) Handshake(c echo.Context) error {
	device, ok := h.resolveDevice(c)
	if !ok {
		return c.String(http.StatusNotFound, "ERROR: unknown device")
	}

	return c.String(http.StatusOK, handshakeOptions(device))
}

// UploadData ingests a pushed data table (ATTLOG punches or OPERLOG events).
func (h *IClockHandler) UploadData(c echo.Context) error {
	device, ok := h.resolveDevice(c)
	if !ok {
		return c.String(http.StatusNotFound, "ERROR: unknown device")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "ERROR: unreadable body")
	}

	switch c.QueryParam("table") {
	case "ATTLOG":
		result, err := h.admsUC.IngestAttendance(c.Request().Context(), device, string(body))
		if err != nil {
			h.logger.Error("ATTLOG ingestion failed",
				slog.String("serial_number", device.SerialNumber),
				slog.Any("error", err))

			return c.String(http.StatusInternalServerError, "ERROR")
		}

		return c.String(http.StatusOK, fmt.Sprintf("OK: %d", len(result.Logs)))
	case "OPERLOG":
		if err := h.admsUC.IngestOperations(c.Request().Context(), device, string(body)); err != nil {
			h.logger.Error("OPERLOG ingestion failed",
				slog.String("serial_number", device.SerialNumber),
				slog.Any("error", err))

			return c.String(http.StatusInternalServerError, "ERROR")
		}

		return c.String(http.StatusOK, "OK")
	default:
		// Tables we do not track (ATTPHOTO and friends) are acknowledged so
		// the device does not retry them forever.
		return c.String(http.StatusOK, "OK")
	}
}

// FetchCommands hands the device its pending command payloads.
func (h *IClockHandler) FetchCommands(c echo.Context) error {
	device, ok := h.resolveDevice(c)
	if !ok {
		return c.String(http.StatusNotFound, "ERROR: unknown device")
	}

	payload, err := h.admsUC.CommandResponse(c.Request().Context(), device)
	if err != nil {
		h.logger.Error("command fetch failed",
			slog.String("serial_number", device.SerialNumber),
			slog.Any("error", err))

		return c.String(http.StatusInternalServerError, "ERROR")
	}

	if payload == "" {
		return c.String(http.StatusOK, "OK")
	}

	return c.String(http.StatusOK, payload)
}

// AcknowledgeCommands resolves command results the device reports back.
// Each line carries "ID=<uuid>&Return=<code>&CMD=<name>".
func (h *IClockHandler) AcknowledgeCommands(c echo.Context) error {
	device, ok := h.resolveDevice(c)
	if !ok {
		return c.String(http.StatusNotFound, "ERROR: unknown device")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "ERROR: unreadable body")
	}

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		values, err := url.ParseQuery(line)
		if err != nil {
			h.logger.Warn("unparseable command acknowledgment",
				slog.String("serial_number", device.SerialNumber),
				slog.String("line", line))

			continue
		}

		commandID, err := uuid.Parse(values.Get("ID"))
		if err != nil {
			h.logger.Warn("command acknowledgment without valid ID",
				slog.String("serial_number", device.SerialNumber),
				slog.String("line", line))

			continue
		}

		if _, err := h.commandUC.Acknowledge(c.Request().Context(), commandID); err != nil {
			h.logger.Error("command acknowledgment failed",
				slog.String("serial_number", device.SerialNumber),
				slog.String("command_id", commandID.String()),
				slog.Any("error", err))
		}
	}

	return c.String(http.StatusOK, "OK")
}

func (h *IClockHandler) resolveDevice(c echo.Context) (*entity.Device, bool) {
	serialNumber := c.QueryParam("SN")
	if serialNumber == "" {
		return nil, false
	}

	device, err := h.admsUC.Handshake(c.Request().Context(), serialNumber)
	if err != nil {
		h.logger.Warn("push from unknown device",
			slog.String("serial_number", serialNumber),
			slog.Any("error", err))

		return nil, false
	}

	return device, true
}

// handshakeOptions renders the transfer-option block the device expects from
// the registration poll.
func handshakeOptions(device *entity.Device) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GET OPTION FROM: %s\r\n", device.SerialNumber)
	sb.WriteString("ATTLOGStamp=None\r\n")
	sb.WriteString("OPERLOGStamp=None\r\n")
	sb.WriteString("ATTPHOTOStamp=None\r\n")
	fmt.Fprintf(&sb, "ErrorDelay=%d\r\n", device.ErrorDelay)
	fmt.Fprintf(&sb, "Delay=%d\r\n", device.PollDelay)
	sb.WriteString("TransTimes=00:00;14:05\r\n")
	sb.WriteString("TransInterval=1\r\n")
	sb.WriteString("TransFlag=111111111111\r\n")
	fmt.Fprintf(&sb, "TimeZone=%d\r\n", timezoneOffsetHours(device.Timezone))
	sb.WriteString("Realtime=1\r\n")
	sb.WriteString("Encrypt=None\r\n")

	return sb.String()
}

// timezoneOffsetHours resolves an IANA timezone name to its current UTC
// offset in whole hours. Unresolvable names fall back to UTC.
func timezoneOffsetHours(name string) int {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0
	}

	_, offset := time.Now().In(loc).Zone()

	return offset / 3600
}
