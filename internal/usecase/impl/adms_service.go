package impl

import (
	"bufio"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// admsTimeLayout is the wall-clock format devices stamp on pushed records.
const admsTimeLayout = "2006-01-02 15:04:05"

// admsService implements the ADMSUsecase interface: the push channel where
// devices initiate contact and upload line-oriented payloads.
type admsService struct {
	deviceRepo        repository.DeviceRepository
	deviceUserRepo    repository.DeviceUserRepository
	operationLogRepo  repository.OperationLogRepository
	fingerprints      *fingerprintStore
	attendanceUsecase usecase.AttendanceUsecase
	commandUsecase    usecase.CommandUsecase
	multiShift        bool
	standardHours     float64
	logger            *slog.Logger
}

// NewADMSService is the constructor for admsService.
func NewADMSService(
	cfg *config.Config,
	deviceRepo repository.DeviceRepository,
	deviceUserRepo repository.DeviceUserRepository,
	operationLogRepo repository.OperationLogRepository,
	fingerprintRepo repository.FingerprintRepository,
	attendanceUsecase usecase.AttendanceUsecase,
	commandUsecase usecase.CommandUsecase,
	logger *slog.Logger,
) usecase.ADMSUsecase {
	return &admsService{
		deviceRepo:        deviceRepo,
		deviceUserRepo:    deviceUserRepo,
		operationLogRepo:  operationLogRepo,
		fingerprints:      newFingerprintStore(deviceUserRepo, fingerprintRepo, logger),
		attendanceUsecase: attendanceUsecase,
		commandUsecase:    commandUsecase,
		multiShift:        cfg.Attendance.MultipleShift,
		standardHours:     cfg.Attendance.StandardWorkingHours,
		logger:            logger,
	}
}

// Handshake resolves the pushing device by serial number and marks it
// connected. Unknown serials are rejected so stray devices on the network
// cannot create data.
func (srv *admsService) Handshake(ctx context.Context, serialNumber string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceBySerial(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no device matches the serial number")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.State != entity.DeviceStateConnected {
		device.State = entity.DeviceStateConnected
		if err := srv.deviceRepo.UpdateDeviceState(ctx, device.ID, entity.DeviceStateConnected); err != nil {
			srv.logger.Warn("Failed to record device state", "device", device.Name, "error", err)
		}
	}

	return device, nil
}

// IngestAttendance parses ATTLOG lines and feeds them through the
// reconciliation engine. Malformed lines are skipped with a warning; one bad
// record must not reject the device's whole upload.
func (srv *admsService) IngestAttendance(ctx context.Context, device *entity.Device, body string) (*usecase.ProcessResult, error) {
	var punches []entity.RawPunch

	sequence := 0
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		punch, err := parseAttendanceLine(line)
		if err != nil {
			srv.logger.Warn("Skipping malformed attendance line",
				"device", device.Name, "line", line, "error", err)

			continue
		}

		punch.Sequence = sequence
		sequence++
		punches = append(punches, punch)
	}

	result, err := srv.attendanceUsecase.ProcessPunches(ctx, device, punches, usecase.ProcessOptions{
		MultiShift:           srv.multiShift,
		StandardWorkingHours: srv.standardHours,
		AutoRegister:         true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process pushed punches")
	}

	return result, nil
}

// parseAttendanceLine parses one ATTLOG record:
// "userID date time number statusCode".
func parseAttendanceLine(line string) (entity.RawPunch, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return entity.RawPunch{}, errors.Errorf("expected 5 fields, got %d", len(fields))
	}

	timestamp, err := time.Parse(admsTimeLayout, fields[1]+" "+fields[2])
	if err != nil {
		return entity.RawPunch{}, errors.Wrap(err, "invalid punch timestamp")
	}

	code, err := strconv.Atoi(fields[4])
	if err != nil {
		return entity.RawPunch{}, errors.Wrap(err, "invalid status code")
	}

	return entity.RawPunch{
		UserID:    fields[0],
		Timestamp: timestamp,
		Code:      code,
		Number:    fields[3],
	}, nil
}

// IngestOperations parses OPERLOG payloads. Three record kinds share the
// channel: OPLOG device events, USER registrations and FP fingerprint
// templates. Unrecognized lines are skipped.
func (srv *admsService) IngestOperations(ctx context.Context, device *entity.Device, body string) error {
	scanner := bufio.NewScanner(strings.NewReader(body))
	// FP payloads carry whole templates on one line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		var err error
		switch {
		case strings.HasPrefix(line, "OPLOG"):
			err = srv.ingestEventLine(ctx, device, line)
		case strings.HasPrefix(line, "USER"):
			err = srv.ingestUserLine(ctx, device, line)
		case strings.HasPrefix(line, "FP"):
			err = srv.ingestFingerprintLine(ctx, device, line)
		case line == "":
			continue
		default:
			srv.logger.Debug("Skipping unrecognized operation line",
				"device", device.Name, "line", line)

			continue
		}

		if err != nil {
			srv.logger.Warn("Skipping malformed operation line",
				"device", device.Name, "line", line, "error", err)
		}
	}

	return nil
}

// ingestEventLine stores one OPLOG record:
// "OPLOG opStamp code operator date time v1 v2 v3 reserved".
func (srv *admsService) ingestEventLine(ctx context.Context, device *entity.Device, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 10 {
		return errors.Errorf("expected 10 fields, got %d", len(fields))
	}

	local, err := time.Parse(admsTimeLayout, fields[4]+" "+fields[5])
	if err != nil {
		return errors.Wrap(err, "invalid event timestamp")
	}
	opTime, err := localToUTC(local, device.Timezone)
	if err != nil {
		return err
	}

	err = srv.operationLogRepo.CreateOperationLog(ctx, &entity.OperationLog{
		ID:       uuid.New(),
		DeviceID: device.ID,
		OpStamp:  fields[1],
		Code:     fields[2],
		Operator: fields[3],
		OpTime:   opTime,
		Value1:   fields[6],
		Value2:   fields[7],
		Value3:   fields[8],
		Reserved: fields[9],
	})
	if err != nil {
		return errors.Wrap(err, "failed to store operation log")
	}

	return nil
}

// ingestUserLine upserts one pushed registration:
// "USER PIN=<id>\tName=<name>\t...".
func (srv *admsService) ingestUserLine(ctx context.Context, device *entity.Device, line string) error {
	values := parseOperationValues(line)
	pin := values["PIN"]
	if pin == "" {
		return errors.New("line carries no PIN")
	}

	found, err := srv.deviceUserRepo.FindDeviceUsersByUserID(ctx, device.ID, pin)
	if err != nil {
		return errors.Wrap(err, "failed to look up device user")
	}

	if len(found) == 0 {
		return srv.deviceUserRepo.CreateDeviceUser(ctx, &entity.DeviceUser{
			ID:       uuid.New(),
			DeviceID: device.ID,
			UserID:   pin,
			Name:     values["Name"],
		})
	}

	deviceUser := found[0]
	if name := values["Name"]; name != "" && name != deviceUser.Name {
		deviceUser.Name = name

		return srv.deviceUserRepo.UpdateDeviceUser(ctx, deviceUser)
	}

	return nil
}

// ingestFingerprintLine stores one pushed template:
// "FP PIN=<id>\t...\tTMP=<base64>".
func (srv *admsService) ingestFingerprintLine(ctx context.Context, device *entity.Device, line string) error {
	values := parseOperationValues(line)
	pin := values["PIN"]
	if pin == "" {
		return errors.New("line carries no PIN")
	}
	template := values["TMP"]
	if template == "" {
		return errors.New("line carries no TMP")
	}

	return srv.fingerprints.StoreTemplate(ctx, device, pin, template)
}

// parseOperationValues splits a tab-delimited operation line into its
// key=value pairs, dropping the leading record-kind token.
func parseOperationValues(line string) map[string]string {
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		line = line[idx+1:]
	}

	values := make(map[string]string)
	for _, field := range strings.Split(line, "\t") {
		key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		values[key] = value
	}

	return values
}

// CommandResponse concatenates the device's pending command payloads and
// marks them executed (the getrequest poll).
func (srv *admsService) CommandResponse(ctx context.Context, device *entity.Device) (string, error) {
	body, err := srv.commandUsecase.FetchPending(ctx, device.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch pending commands")
	}

	return body, nil
}
