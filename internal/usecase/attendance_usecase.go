package usecase

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessOptions carries the reconciliation settings resolved once per
// operation. Nothing in the engine reads process-wide state.
type ProcessOptions struct {
	// MultiShift aggregates a day's punches into sub-shifts of one
	// attendance record.
	MultiShift bool

	// StandardWorkingHours is the expected daily total for overtime and
	// shortfall arithmetic.
	StandardWorkingHours float64

	// AutoRegister creates a bare DeviceUser for unknown device user ids
	// instead of reporting them as failures. Push ingestion enables this;
	// pull cycles do not.
	AutoRegister bool
}

// PunchFailure records one punch that could not be processed. Batches never
// abort on per-record errors; failures are collected and returned.
type PunchFailure struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Err       error     `json:"-"`
	Reason    string    `json:"reason"`
}

// ProcessResult is the outcome of one reconciliation cycle.
type ProcessResult struct {
	Logs     []*entity.PunchLog `json:"logs"`     // Punch logs persisted or merged this cycle.
	Failures []PunchFailure     `json:"failures"` // Punches rejected this cycle.
}

// AttendanceUsecase defines the interface for the punch reconciliation engine
// and attendance record management.
type AttendanceUsecase interface {
	// ProcessPunches normalizes and reconciles one pull cycle's raw punches
	// into punch logs and attendance intervals. Idempotent: re-running on
	// already-persisted punches changes nothing.
	ProcessPunches(ctx context.Context, device *entity.Device, punches []entity.RawPunch, opts ProcessOptions) (*ProcessResult, error)

	// GetAttendances lists an employee's attendance records, most recent
	// first. Summaries are computed on the way out.
	GetAttendances(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.Attendance, error)

	// DeleteAttendance removes an attendance record, resetting the calculated
	// flag on the punch logs that produced it so they can be re-processed.
	DeleteAttendance(ctx context.Context, id uuid.UUID) error

	// DeletePunchLog removes a punch log. Logs already consumed by attendance
	// computation are refused.
	DeletePunchLog(ctx context.Context, id uuid.UUID) error

	// GetPunchLogs lists an employee's punch logs, most recent first.
	GetPunchLogs(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.PunchLog, error)
}
