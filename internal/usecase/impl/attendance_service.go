// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"
	"timeclock/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// attendanceService implements the AttendanceUsecase interface.
type attendanceService struct {
	txManager     repository.TransactionManager
	punchCodeRepo repository.PunchCodeRepository
	employeeLocks *util.KeyedMutex
	standardHours float64
	logger        *slog.Logger
}

// NewAttendanceService is the constructor for attendanceService.
func NewAttendanceService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	punchCodeRepo repository.PunchCodeRepository,
	logger *slog.Logger,
) usecase.AttendanceUsecase {
	return &attendanceService{
		txManager:     txManager,
		punchCodeRepo: punchCodeRepo,
		employeeLocks: util.NewKeyedMutex(),
		standardHours: cfg.Attendance.StandardWorkingHours,
		logger:        logger,
	}
}

// ProcessPunches normalizes one cycle's raw punches and reconciles them into
// punch logs and attendance intervals. Punches are grouped per device user and
// each group runs in its own transaction under a per-employee lock, so a
// broken group never poisons the rest of the batch.
func (srv *attendanceService) ProcessPunches(ctx context.Context, device *entity.Device, punches []entity.RawPunch, opts usecase.ProcessOptions) (*usecase.ProcessResult, error) {
	result := &usecase.ProcessResult{}
	if len(punches) == 0 {
		return result, nil
	}

	srv.logger.Debug("Processing punches",
		"device", device.Name, "count", len(punches), "multiShift", opts.MultiShift)

	activities, err := srv.loadActivities(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load punch code mappings")
	}

	groups, order := groupPunches(punches)
	for _, userID := range order {
		srv.processUserPunches(ctx, device, userID, groups[userID], activities, opts, result)
	}

	return result, nil
}

// loadActivities resolves the device's raw-code mappings into a lookup table.
func (srv *attendanceService) loadActivities(ctx context.Context, deviceID uuid.UUID) (map[int]entity.ActivityType, error) {
	mappings, err := srv.punchCodeRepo.FindMappingsByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	activities := make(map[int]entity.ActivityType, len(mappings))
	for _, m := range mappings {
		activities[m.Code] = m.Activity
	}

	return activities, nil
}

// groupPunches splits a cycle's punches per device user id, each group ordered
// by device wall time with the ingestion sequence as tie-break. The returned
// key order is deterministic so re-runs replay identically.
func groupPunches(punches []entity.RawPunch) (map[string][]entity.RawPunch, []string) {
	groups := make(map[string][]entity.RawPunch)
	for _, p := range punches {
		groups[p.UserID] = append(groups[p.UserID], p)
	}

	order := make([]string, 0, len(groups))
	for userID := range groups {
		order = append(order, userID)
		group := groups[userID]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Timestamp.Equal(group[j].Timestamp) {
				return group[i].Sequence < group[j].Sequence
			}

			return group[i].Timestamp.Before(group[j].Timestamp)
		})
	}
	sort.Strings(order)

	return groups, order
}

// processUserPunches reconciles one device user's punches. Failures go into the
// result; they never abort the batch.
func (srv *attendanceService) processUserPunches(
	ctx context.Context,
	device *entity.Device,
	userID string,
	punches []entity.RawPunch,
	activities map[int]entity.ActivityType,
	opts usecase.ProcessOptions,
	result *usecase.ProcessResult,
) {
	deviceUser, err := srv.resolveDeviceUser(ctx, device, userID, opts.AutoRegister)
	if err != nil {
		for _, p := range punches {
			result.Failures = append(result.Failures, usecase.PunchFailure{
				UserID:    userID,
				Timestamp: p.Timestamp,
				Err:       err,
				Reason:    err.Error(),
			})
		}

		return
	}

	lockKey := deviceUser.ID.String()
	if deviceUser.EmployeeID != nil {
		lockKey = deviceUser.EmployeeID.String()
	}
	srv.employeeLocks.Lock(lockKey)
	defer srv.employeeLocks.Unlock(lockKey)

	for _, punch := range punches {
		punchTime, err := localToUTC(punch.Timestamp, device.Timezone)
		if err != nil {
			srv.logger.Warn("Punch normalization failed",
				"device", device.Name, "userID", userID, "timestamp", punch.Timestamp, "error", err)
			result.Failures = append(result.Failures, usecase.PunchFailure{
				UserID:    userID,
				Timestamp: punch.Timestamp,
				Err:       err,
				Reason:    err.Error(),
			})

			continue
		}

		log, err := srv.reconcilePunch(ctx, device, deviceUser, punch, punchTime, activities, opts)
		if err != nil {
			result.Failures = append(result.Failures, usecase.PunchFailure{
				UserID:    userID,
				Timestamp: punch.Timestamp,
				Err:       err,
				Reason:    err.Error(),
			})

			continue
		}
		result.Logs = append(result.Logs, log)
	}
}

// resolveDeviceUser maps the textual device-side id to its registration. More
// than one registration with the same id is a configuration fault the operator
// must fix; the error names both employees so they can.
func (srv *attendanceService) resolveDeviceUser(ctx context.Context, device *entity.Device, userID string, autoRegister bool) (*entity.DeviceUser, error) {
	var deviceUser *entity.DeviceUser

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceUserRepo := repoFactory.NewDeviceUserRepository()

		found, err := deviceUserRepo.FindDeviceUsersByUserID(ctx, device.ID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find device users")
		}

		switch len(found) {
		case 0:
			if !autoRegister {
				return domainerrors.ErrDeviceUserNotFound.WrapMessage(
					fmt.Sprintf("device user %q is not registered on device %s", userID, device.Name))
			}

			deviceUser = &entity.DeviceUser{
				ID:       uuid.New(),
				DeviceID: device.ID,
				UserID:   userID,
			}
			if err := deviceUserRepo.CreateDeviceUser(ctx, deviceUser); err != nil {
				return errors.Wrap(err, "failed to auto-register device user")
			}

			return nil
		case 1:
			deviceUser = found[0]

			return nil
		default:
			return domainerrors.ErrDuplicateIdentifier.WrapMessage(
				fmt.Sprintf("device user id %q on device %s maps to both %q and %q",
					userID, device.Name, found[0].Name, found[1].Name))
		}
	})
	if err != nil {
		return nil, err
	}

	return deviceUser, nil
}

// reconcilePunch persists one normalized punch. An already-stored punch merges
// instead of replaying: calculated rows keep their status and only the
// informational fields refresh, so re-ingesting a cycle changes nothing.
func (srv *attendanceService) reconcilePunch(
	ctx context.Context,
	device *entity.Device,
	deviceUser *entity.DeviceUser,
	punch entity.RawPunch,
	punchTime time.Time,
	activities map[int]entity.ActivityType,
	opts usecase.ProcessOptions,
) (*entity.PunchLog, error) {
	var log *entity.PunchLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		punchLogRepo := repoFactory.NewPunchLogRepository()

		existing, err := punchLogRepo.FindPunchLogByUserAndTime(ctx, deviceUser.ID, punchTime)
		if err != nil && !errors.Is(err, repository.ErrPunchLogNotFound) {
			return errors.Wrap(err, "failed to look up punch log")
		}

		if existing != nil {
			existing.Code = punch.Code
			existing.Number = punch.Number
			existing.Sequence = punch.Sequence
			existing.DeviceName = device.Name
			if !existing.Calculated {
				existing.Status = entity.PunchStatusPunched
			}
			if err := punchLogRepo.UpdatePunchLog(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to merge punch log")
			}
			log = existing

			return nil
		}

		log = &entity.PunchLog{
			ID:           uuid.New(),
			DeviceUserID: deviceUser.ID,
			EmployeeID:   deviceUser.EmployeeID,
			PunchTime:    punchTime,
			Status:       entity.PunchStatusPunched,
			Code:         punch.Code,
			Number:       punch.Number,
			Sequence:     punch.Sequence,
			DeviceName:   device.Name,
		}

		// Unclaimed device identities record the punch but drive no
		// attendance interval.
		if deviceUser.EmployeeID != nil {
			status, err := srv.applyToAttendance(ctx, repoFactory, *deviceUser.EmployeeID, punchTime, activities[punch.Code], opts)
			if err != nil {
				return err
			}
			log.Status = status
			log.Calculated = status != entity.PunchStatusPunched
		}

		if err := punchLogRepo.CreatePunchLog(ctx, log); err != nil {
			return errors.Wrap(err, "failed to create punch log")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

// applyToAttendance mutates the employee's attendance state for one new punch
// and returns the punch's final status. The device's code mapping is advisory
// only: the interval state decides, so out-of-order codes cannot open a second
// interval or close a closed one.
func (srv *attendanceService) applyToAttendance(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	employeeID uuid.UUID,
	punchTime time.Time,
	activity entity.ActivityType,
	opts usecase.ProcessOptions,
) (entity.PunchStatus, error) {
	attendanceRepo := repoFactory.NewAttendanceRepository()

	latest, err := attendanceRepo.FindLatestAttendance(ctx, employeeID)
	if err != nil && !errors.Is(err, repository.ErrAttendanceNotFound) {
		return "", errors.Wrap(err, "failed to find latest attendance")
	}

	if opts.MultiShift {
		return srv.applyMultiShift(ctx, attendanceRepo, employeeID, latest, punchTime, activity)
	}

	return srv.applySingleShift(ctx, attendanceRepo, employeeID, latest, punchTime)
}

// applySingleShift runs the plain interval walk: no open interval opens one,
// an open interval closes on the first strictly later punch, anything at or
// before the open check-in is stale.
func (srv *attendanceService) applySingleShift(
	ctx context.Context,
	attendanceRepo repository.AttendanceRepository,
	employeeID uuid.UUID,
	latest *entity.Attendance,
	punchTime time.Time,
) (entity.PunchStatus, error) {
	if latest != nil && latest.IsOpen() {
		if !punchTime.After(latest.CheckIn) {
			return entity.PunchStatusPunched, nil
		}

		checkOut := punchTime
		latest.CheckOut = &checkOut
		if err := attendanceRepo.UpdateAttendance(ctx, latest); err != nil {
			return "", errors.Wrap(err, "failed to close attendance")
		}

		return entity.PunchStatusCheckOut, nil
	}

	// Re-delivered punches from before the latest closed interval are stale.
	if latest != nil && !punchTime.After(*latest.CheckOut) {
		return entity.PunchStatusPunched, nil
	}

	attendance := &entity.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CheckIn:    punchTime,
	}
	if err := attendanceRepo.CreateAttendance(ctx, attendance); err != nil {
		return "", errors.Wrap(err, "failed to open attendance")
	}

	return entity.PunchStatusCheckIn, nil
}

// applyMultiShift aggregates one day's punches into sub-shifts of a single
// attendance record. The record's own check-in/check-out always spans from the
// first sub-shift's start to the last closed sub-shift's end.
func (srv *attendanceService) applyMultiShift(
	ctx context.Context,
	attendanceRepo repository.AttendanceRepository,
	employeeID uuid.UUID,
	latest *entity.Attendance,
	punchTime time.Time,
	activity entity.ActivityType,
) (entity.PunchStatus, error) {
	if latest == nil || !latest.MultiShift || !sameDay(latest.CheckIn, punchTime) {
		attendance := &entity.Attendance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			CheckIn:    punchTime,
			MultiShift: true,
		}
		if err := attendanceRepo.CreateAttendance(ctx, attendance); err != nil {
			return "", errors.Wrap(err, "failed to open attendance")
		}
		shift := &entity.Shift{ID: uuid.New(), AttendanceID: attendance.ID, CheckIn: punchTime}
		if err := attendanceRepo.CreateShift(ctx, shift); err != nil {
			return "", errors.Wrap(err, "failed to open shift")
		}

		return entity.PunchStatusCheckIn, nil
	}

	shifts, err := attendanceRepo.FindShiftsByAttendance(ctx, latest.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load shifts")
	}

	var last *entity.Shift
	if len(shifts) > 0 {
		last = shifts[len(shifts)-1]
	}

	if last != nil && last.CheckOut == nil {
		if !punchTime.After(last.CheckIn) {
			return entity.PunchStatusPunched, nil
		}

		checkOut := punchTime
		last.CheckOut = &checkOut
		if err := attendanceRepo.UpdateShift(ctx, last); err != nil {
			return "", errors.Wrap(err, "failed to close shift")
		}
		latest.CheckOut = &checkOut
		if err := attendanceRepo.UpdateAttendance(ctx, latest); err != nil {
			return "", errors.Wrap(err, "failed to close attendance")
		}

		return entity.PunchStatusCheckOut, nil
	}

	if last != nil && !punchTime.After(*last.CheckOut) {
		return entity.PunchStatusPunched, nil
	}

	// A mapped check-out code with no open sub-shift is stale rather than the
	// start of a new sub-shift.
	if activity == entity.ActivityCheckOut {
		return entity.PunchStatusPunched, nil
	}

	shift := &entity.Shift{ID: uuid.New(), AttendanceID: latest.ID, CheckIn: punchTime}
	if err := attendanceRepo.CreateShift(ctx, shift); err != nil {
		return "", errors.Wrap(err, "failed to open shift")
	}
	latest.CheckOut = nil
	if err := attendanceRepo.UpdateAttendance(ctx, latest); err != nil {
		return "", errors.Wrap(err, "failed to reopen attendance")
	}

	return entity.PunchStatusCheckIn, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()

	return ay == by && am == bm && ad == bd
}

// GetAttendances retrieves the employee's attendance records, most recent
// first, with summaries computed on the way out.
func (srv *attendanceService) GetAttendances(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.Attendance, error) {
	var attendances []*entity.Attendance

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		attendanceRepo := repoFactory.NewAttendanceRepository()

		found, err := attendanceRepo.FindAttendancesByEmployee(ctx, employeeID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to find attendances")
		}

		for _, attendance := range found {
			if attendance.MultiShift {
				shifts, err := attendanceRepo.FindShiftsByAttendance(ctx, attendance.ID)
				if err != nil {
					return errors.Wrap(err, "failed to load shifts")
				}
				attendance.Shifts = make([]entity.Shift, len(shifts))
				for i, s := range shifts {
					attendance.Shifts[i] = *s
				}
			}
			attendance.Summary = computeSummary(attendance, srv.standardHours)
		}
		attendances = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get attendances")
	}

	return attendances, nil
}

// DeleteAttendance removes an attendance record and releases the punch logs
// that produced it, so the same punches can be re-pulled and re-processed.
func (srv *attendanceService) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting attendance", "attendanceID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		attendanceRepo := repoFactory.NewAttendanceRepository()
		punchLogRepo := repoFactory.NewPunchLogRepository()

		attendance, err := attendanceRepo.FindAttendanceByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAttendanceNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "attendance not found")
			}

			return errors.Wrap(err, "failed to find attendance")
		}

		times := attendanceTimes(attendance)
		if attendance.MultiShift {
			shifts, err := attendanceRepo.FindShiftsByAttendance(ctx, attendance.ID)
			if err != nil {
				return errors.Wrap(err, "failed to load shifts")
			}
			for _, s := range shifts {
				times = append(times, s.CheckIn)
				if s.CheckOut != nil {
					times = append(times, *s.CheckOut)
				}
			}
		}

		logs, err := punchLogRepo.FindPunchLogsByEmployeeAndTimes(ctx, attendance.EmployeeID, times)
		if err != nil {
			return errors.Wrap(err, "failed to find punch logs")
		}
		for _, log := range logs {
			if err := punchLogRepo.SetCalculated(ctx, log.ID, false); err != nil {
				return errors.Wrap(err, "failed to reset calculated flag")
			}
		}

		if err := attendanceRepo.DeleteAttendance(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete attendance")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete attendance")
	}

	return nil
}

func attendanceTimes(attendance *entity.Attendance) []time.Time {
	times := []time.Time{attendance.CheckIn}
	if attendance.CheckOut != nil {
		times = append(times, *attendance.CheckOut)
	}

	return times
}

// DeletePunchLog removes a punch log unless attendance computation already
// consumed it.
func (srv *attendanceService) DeletePunchLog(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting punch log", "punchLogID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		punchLogRepo := repoFactory.NewPunchLogRepository()

		if err := punchLogRepo.DeletePunchLog(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrPunchLogCalculated):
				return domainerrors.ErrDeletionGuard.WrapMessage("punch log already consumed by attendance computation")
			case errors.Is(err, repository.ErrPunchLogNotFound):
				return errors.Wrap(domainerrors.ErrNotFound, "punch log not found")
			}

			return errors.Wrap(err, "failed to delete punch log")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete punch log")
	}

	return nil
}

// GetPunchLogs retrieves the employee's punch logs, most recent first.
func (srv *attendanceService) GetPunchLogs(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.PunchLog, error) {
	var logs []*entity.PunchLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		punchLogRepo := repoFactory.NewPunchLogRepository()

		found, err := punchLogRepo.FindPunchLogsByEmployee(ctx, employeeID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to find punch logs")
		}
		logs = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get punch logs")
	}

	return logs, nil
}
