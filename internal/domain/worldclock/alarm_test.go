package worldclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseAlarmTime verifies parsing of valid and malformed alarm strings.
func TestParseAlarmTime(t *testing.T) {
	t.Parallel()

	alarm, err := ParseAlarmTime("08:30")
	require.NoError(t, err)
	require.Equal(t, AlarmTime{Hour: 8, Minute: 30}, alarm)
	require.Equal(t, "08:30", alarm.String())

	alarm, err = ParseAlarmTime("23:59")
	require.NoError(t, err)
	require.Equal(t, AlarmTime{Hour: 23, Minute: 59}, alarm)

	for _, bad := range []string{"", "8h30", "25:00", "12:61", "12:30:15"} {
		_, err = ParseAlarmTime(bad)
		require.Error(t, err, "input %q", bad)
	}
}

// TestParseAlarmSet verifies order preservation and first-error behavior.
func TestParseAlarmSet(t *testing.T) {
	t.Parallel()

	alarms, err := ParseAlarmSet([]string{"08:30", "17:00"})
	require.NoError(t, err)
	require.Equal(t, AlarmSet{{8, 30}, {17, 0}}, alarms)
	require.Equal(t, []string{"08:30", "17:00"}, alarms.Strings())

	_, err = ParseAlarmSet([]string{"08:30", "nope"})
	require.Error(t, err)

	alarms, err = ParseAlarmSet(nil)
	require.NoError(t, err)
	require.Nil(t, alarms)
}

// at builds a local wall-clock time for evaluator tests.
func at(hour, minute, second int) time.Time {
	return time.Date(2024, time.March, 5, hour, minute, second, 0, time.Local)
}

// TestAlarmMatchIsMinuteGranular checks that an alarm is active for the whole
// matching minute and inactive outside it.
func TestAlarmMatchIsMinuteGranular(t *testing.T) {
	t.Parallel()

	alarms := AlarmSet{{Hour: 8, Minute: 30}}

	for second := 0; second < 60; second += 13 {
		require.True(t, alarms.IsActive(at(8, 30, second), Dismissal{}), "at 08:30:%02d", second)
	}

	require.False(t, alarms.IsActive(at(8, 29, 59), Dismissal{}))
	require.False(t, alarms.IsActive(at(8, 31, 0), Dismissal{}))
	require.False(t, alarms.IsActive(at(20, 30, 0), Dismissal{}))
}

// TestDismissalSilencesExactlyOneMinute walks the dismissal state machine:
// active, dismissed for the rest of the minute, cleared at the next minute,
// active again when the same alarm recurs.
func TestDismissalSilencesExactlyOneMinute(t *testing.T) {
	t.Parallel()

	alarms := AlarmSet{{Hour: 8, Minute: 30}}

	// Alarm fires, user dismisses at 08:30:15.
	now := at(8, 30, 15)
	require.True(t, alarms.IsActive(now, Dismissal{}))

	dismissal := Dismiss(now)
	require.True(t, dismissal.Recorded())

	// Silenced for the remainder of the minute.
	require.False(t, alarms.IsActive(at(8, 30, 16), dismissal))
	require.False(t, alarms.IsActive(at(8, 30, 59), dismissal))

	// Next minute: the stale dismissal clears before evaluation.
	now = at(8, 31, 0)
	dismissal = dismissal.ClearIfStale(now)
	require.False(t, dismissal.Recorded())
	require.False(t, alarms.IsActive(now, dismissal))

	// Same alarm the next day rings again.
	nextDay := time.Date(2024, time.March, 6, 8, 30, 0, 0, time.Local)
	dismissal = dismissal.ClearIfStale(nextDay)
	require.True(t, alarms.IsActive(nextDay, dismissal))
}

// TestClearIfStaleKeepsCurrentMinute ensures a dismissal survives within its
// own minute and that the zero dismissal stays zero.
func TestClearIfStaleKeepsCurrentMinute(t *testing.T) {
	t.Parallel()

	dismissal := Dismiss(at(8, 30, 15))
	require.Equal(t, dismissal, dismissal.ClearIfStale(at(8, 30, 45)))
	require.True(t, dismissal.Covers(at(8, 30, 59)))
	require.False(t, dismissal.Covers(at(8, 31, 0)))

	var none Dismissal
	require.Equal(t, none, none.ClearIfStale(at(8, 31, 0)))
}

// TestClockAt verifies zone conversion from a shared instant.
func TestClockAt(t *testing.T) {
	t.Parallel()

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	clock := Clock{Name: "Asia/Tokyo", Location: tokyo}
	instant := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	converted := clock.At(instant)
	require.Equal(t, 21, converted.Hour())
	require.Equal(t, "2024-03-05", converted.Format("2006-01-02"))
}
