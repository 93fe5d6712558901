package impl

import (
	"fmt"
	"time"

	domainerrors "timeclock/internal/domain/errors"
)

// dstProbeShifts covers the DST transition sizes in use worldwide.
var dstProbeShifts = []time.Duration{
	-time.Hour,
	-30 * time.Minute,
	30 * time.Minute,
	time.Hour,
}

// localToUTC converts a device-local wall time to UTC under the given IANA
// zone. Wall times that do not exist (spring-forward gap) or occur twice
// (fall-back overlap) are rejected: the device clock cannot be trusted to
// mean either instant, and a wrong pick would corrupt interval ordering.
func localToUTC(local time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, domainerrors.ErrTimeConversion.WrapMessage(
			fmt.Sprintf("unknown timezone %q", zone))
	}

	t := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)

	// time.Date normalizes nonexistent wall times instead of failing; a
	// changed wall clock after construction means the input fell in a gap.
	if !sameWallClock(t, local) {
		return time.Time{}, domainerrors.ErrTimeConversion.WrapMessage(
			fmt.Sprintf("local time %s does not exist in %s", local.Format(time.DateTime), zone))
	}

	// A wall time is ambiguous when shifting the instant by a DST delta
	// lands on the same wall clock again.
	for _, shift := range dstProbeShifts {
		if sameWallClock(t.Add(shift).In(loc), local) {
			return time.Time{}, domainerrors.ErrTimeConversion.WrapMessage(
				fmt.Sprintf("local time %s is ambiguous in %s", local.Format(time.DateTime), zone))
		}
	}

	return t.UTC(), nil
}

// utcToLocal is the inverse mapping, used for display and round-trip checks.
func utcToLocal(utc time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, domainerrors.ErrTimeConversion.WrapMessage(
			fmt.Sprintf("unknown timezone %q", zone))
	}

	return utc.In(loc), nil
}

func sameWallClock(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute() &&
		a.Second() == b.Second()
}
