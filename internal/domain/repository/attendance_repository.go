package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAttendanceNotFound is returned when an attendance record is not found.
var ErrAttendanceNotFound = errors.New("attendance not found")

// AttendanceRepository defines the interface for attendance interval storage.
type AttendanceRepository interface {
	// CreateAttendance persists a new attendance interval.
	CreateAttendance(ctx context.Context, attendance *entity.Attendance) error

	// FindAttendanceByID retrieves an attendance record by its unique ID.
	FindAttendanceByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error)

	// FindLatestAttendance retrieves the employee's most recent attendance
	// record by check-in time, or ErrAttendanceNotFound when none exists.
	FindLatestAttendance(ctx context.Context, employeeID uuid.UUID) (*entity.Attendance, error)

	// FindAttendancesByEmployee retrieves an employee's attendance records
	// ordered by check-in descending.
	FindAttendancesByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.Attendance, error)

	// UpdateAttendance persists changes to an existing attendance record.
	UpdateAttendance(ctx context.Context, attendance *entity.Attendance) error

	// CreateShift appends a sub-shift to a multi-shift attendance record.
	CreateShift(ctx context.Context, shift *entity.Shift) error

	// UpdateShift persists changes to an existing sub-shift.
	UpdateShift(ctx context.Context, shift *entity.Shift) error

	// FindShiftsByAttendance retrieves the sub-shifts of an attendance record
	// ordered by check-in ascending.
	FindShiftsByAttendance(ctx context.Context, attendanceID uuid.UUID) ([]*entity.Shift, error)

	// DeleteAttendance removes an attendance record and its sub-shifts.
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
}
