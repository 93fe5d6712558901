package repository

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for punch log persistence.
var (
	// ErrPunchLogNotFound is returned when a punch log is not found.
	ErrPunchLogNotFound = errors.New("punch log not found")
	// ErrPunchLogCalculated is returned when deleting a punch log that has
	// already been consumed by attendance computation.
	ErrPunchLogCalculated = errors.New("punch log already calculated")
)

// PunchLogRepository defines the interface for normalized punch log storage.
type PunchLogRepository interface {
	// CreatePunchLog persists a new punch log.
	CreatePunchLog(ctx context.Context, log *entity.PunchLog) error

	// FindPunchLogByID retrieves a punch log by its unique ID.
	FindPunchLogByID(ctx context.Context, id uuid.UUID) (*entity.PunchLog, error)

	// FindPunchLogByUserAndTime retrieves the punch log for a device user at
	// an exact UTC timestamp, if one exists.
	FindPunchLogByUserAndTime(ctx context.Context, deviceUserID uuid.UUID, punchTime time.Time) (*entity.PunchLog, error)

	// FindPunchLogsByEmployee retrieves an employee's punch logs ordered by
	// punch time descending.
	FindPunchLogsByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.PunchLog, error)

	// FindPunchLogsByEmployeeAndTimes retrieves an employee's punch logs whose
	// punch time matches any of the given instants.
	FindPunchLogsByEmployeeAndTimes(ctx context.Context, employeeID uuid.UUID, times []time.Time) ([]*entity.PunchLog, error)

	// UpdatePunchLog persists changes to an existing punch log.
	UpdatePunchLog(ctx context.Context, log *entity.PunchLog) error

	// SetCalculated flips the calculated flag on a punch log.
	SetCalculated(ctx context.Context, id uuid.UUID, calculated bool) error

	// DeletePunchLog removes a punch log. Implementations must refuse to
	// remove calculated logs and return ErrPunchLogCalculated, leaving the
	// store unchanged.
	DeletePunchLog(ctx context.Context, id uuid.UUID) error
}
