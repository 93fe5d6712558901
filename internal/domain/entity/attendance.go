package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is a check-in/check-out interval for one employee.
//
// CheckOut is nil while the interval is open. An open interval is closed by
// the first later punch for the same employee; punches at or before CheckIn
// never mutate it. When multi-shift mode is on, one Attendance aggregates the
// day's sub-shifts and Summary carries the aggregate arithmetic.
type Attendance struct {
	ID         uuid.UUID     `json:"id"`
	EmployeeID uuid.UUID     `json:"employee_id"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   *time.Time    `json:"check_out"` // Nil while the interval is open.
	MultiShift bool          `json:"multi_shift"`
	Shifts     []Shift       `json:"shifts,omitempty"` // Sub-intervals when multi-shift mode is on.
	Summary    *ShiftSummary `json:"summary,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Shift is a single check-in/check-out sub-interval inside a multi-shift
// Attendance.
type Shift struct {
	ID           uuid.UUID  `json:"id"`
	AttendanceID uuid.UUID  `json:"attendance_id"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
}

// ShiftSummary carries the payroll-relevant aggregate arithmetic of an
// Attendance. It is computed on demand from the interval (or its sub-shifts)
// rather than stored as derived columns.
type ShiftSummary struct {
	BreakTime         float64 `json:"break_time"`          // Hours between consecutive sub-shifts.
	WorkedHours       float64 `json:"worked_hours"`        // Total interval span in hours.
	ActualWorkedHours float64 `json:"actual_worked_hours"` // Worked hours minus break time.
	OvertimeHours     float64 `json:"overtime_hours"`      // Hours worked beyond the standard day.
	ShortfallHours    float64 `json:"shortfall_hours"`     // Hours missing from the standard day.
}

// Duration returns the interval length, or zero while the interval is open.
func (a *Attendance) Duration() time.Duration {
	if a.CheckOut == nil {
		return 0
	}

	return a.CheckOut.Sub(a.CheckIn)
}

// IsOpen reports whether the interval still awaits a check-out.
func (a *Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// Duration returns the sub-interval length, or zero while it is open.
func (s *Shift) Duration() time.Duration {
	if s.CheckOut == nil {
		return 0
	}

	return s.CheckOut.Sub(s.CheckIn)
}
