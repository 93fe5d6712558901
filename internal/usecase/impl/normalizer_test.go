package impl

import (
	"testing"
	"time"

	domainerrors "timeclock/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallTime(value string) time.Time {
	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestLocalToUTC_Converts(t *testing.T) {
	got, err := localToUTC(wallTime("2024-01-15 09:00:00"), "Asia/Kolkata")
	require.NoError(t, err)

	// Kolkata is UTC+5:30 year-round.
	assert.Equal(t, time.Date(2024, 1, 15, 3, 30, 0, 0, time.UTC), got)
}

func TestLocalToUTC_RoundTrip(t *testing.T) {
	zones := []string{"UTC", "Asia/Kolkata", "Europe/Berlin", "America/New_York"}
	local := wallTime("2024-06-10 14:25:36")

	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			utc, err := localToUTC(local, zone)
			require.NoError(t, err)

			back, err := utcToLocal(utc, zone)
			require.NoError(t, err)
			assert.True(t, sameWallClock(back, local),
				"round trip through %s changed %s to %s", zone, local, back)
		})
	}
}

func TestLocalToUTC_RejectsSpringForwardGap(t *testing.T) {
	// Berlin skipped 02:00-03:00 on 2024-03-31.
	_, err := localToUTC(wallTime("2024-03-31 02:30:00"), "Europe/Berlin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTimeConversion))
}

func TestLocalToUTC_RejectsFallBackOverlap(t *testing.T) {
	// Berlin replayed 02:00-03:00 on 2024-10-27.
	_, err := localToUTC(wallTime("2024-10-27 02:30:00"), "Europe/Berlin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTimeConversion))
}

func TestLocalToUTC_RejectsUnknownZone(t *testing.T) {
	_, err := localToUTC(wallTime("2024-01-15 09:00:00"), "Mars/Olympus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTimeConversion))
}
