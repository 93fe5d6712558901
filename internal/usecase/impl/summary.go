package impl

import (
	"math"
	"time"

	"timeclock/internal/domain/entity"
)

// computeSummary derives the payroll arithmetic for an attendance record.
// Worked hours is the span of the whole interval, break time the gaps between
// consecutive closed sub-shifts, and actual worked hours the span minus the
// breaks. Overtime and shortfall compare the actual total against the
// standard working day. Open intervals contribute nothing.
func computeSummary(attendance *entity.Attendance, standardWorkingHours float64) *entity.ShiftSummary {
	summary := &entity.ShiftSummary{}

	if attendance.CheckOut != nil {
		summary.WorkedHours = attendance.Duration().Hours()
	}

	var previousEnd *time.Time
	for i := range attendance.Shifts {
		shift := &attendance.Shifts[i]
		if shift.CheckOut == nil {
			continue
		}
		if previousEnd != nil && shift.CheckIn.After(*previousEnd) {
			summary.BreakTime += shift.CheckIn.Sub(*previousEnd).Hours()
		}
		previousEnd = shift.CheckOut
	}

	summary.ActualWorkedHours = summary.WorkedHours - summary.BreakTime

	summary.BreakTime = roundHours(summary.BreakTime)
	summary.WorkedHours = roundHours(summary.WorkedHours)
	summary.ActualWorkedHours = roundHours(summary.ActualWorkedHours)

	if standardWorkingHours <= 0 || summary.ActualWorkedHours == 0 {
		return summary
	}

	difference := roundHours(summary.ActualWorkedHours - standardWorkingHours)
	switch {
	case difference > 0:
		summary.OvertimeHours = difference
	case difference < 0:
		summary.ShortfallHours = -difference
	}

	return summary
}

// roundHours keeps the arithmetic at payroll precision (two decimals).
func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
