package worldclock

import (
	"fmt"
	"time"
)

// alarmLayout is the accepted wall-clock format for alarm strings.
const alarmLayout = "15:04"

// AlarmTime is a wall-clock time of day at minute granularity.
type AlarmTime struct {
	// Hour in 24-hour notation, 0-23.
	Hour int
	// Minute within the hour, 0-59.
	Minute int
}

// ParseAlarmTime parses an "HH:MM" string into an AlarmTime.
func ParseAlarmTime(s string) (AlarmTime, error) {
	t, err := time.Parse(alarmLayout, s)
	if err != nil {
		return AlarmTime{}, fmt.Errorf("parse alarm time %q: %w", s, err)
	}

	return AlarmTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the alarm back into the persisted "HH:MM" form.
func (a AlarmTime) String() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// Matches reports whether the alarm fires at the given local time.
// Comparison is minute-granular; seconds are ignored.
func (a AlarmTime) Matches(now time.Time) bool {
	return now.Hour() == a.Hour && now.Minute() == a.Minute
}

// AlarmSet is the ordered collection of configured alarms.
// Duplicates are harmless: matching is an any-of check.
type AlarmSet []AlarmTime

// ParseAlarmSet parses a list of "HH:MM" strings, failing on the first
// malformed entry.
func ParseAlarmSet(values []string) (AlarmSet, error) {
	if len(values) == 0 {
		return nil, nil
	}

	alarms := make(AlarmSet, 0, len(values))

	for _, v := range values {
		alarm, err := ParseAlarmTime(v)
		if err != nil {
			return nil, err
		}

		alarms = append(alarms, alarm)
	}

	return alarms, nil
}

// Strings returns the persisted "HH:MM" form of every alarm, in order.
func (s AlarmSet) Strings() []string {
	if len(s) == 0 {
		return nil
	}

	values := make([]string, 0, len(s))
	for _, a := range s {
		values = append(values, a.String())
	}

	return values
}

// IsActive reports whether some alarm matches the local time and the
// dismissal does not cover the current minute. Callers clear a stale
// dismissal before evaluating so a dismissal silences exactly the remainder
// of the matching minute and nothing after it.
func (s AlarmSet) IsActive(now time.Time, dismissal Dismissal) bool {
	if dismissal.Covers(now) {
		return false
	}

	for _, a := range s {
		if a.Matches(now) {
			return true
		}
	}

	return false
}

// Dismissal records the minute during which an active alarm was silenced.
// The zero value means no dismissal is outstanding. At most one dismissal
// exists at a time; it is owned and threaded by the render cycle.
type Dismissal struct {
	hour     int
	minute   int
	recorded bool
}

// Dismiss records the current local minute as dismissed.
func Dismiss(now time.Time) Dismissal {
	return Dismissal{
		hour:     now.Hour(),
		minute:   now.Minute(),
		recorded: true,
	}
}

// Recorded reports whether a dismissal is outstanding.
func (d Dismissal) Recorded() bool {
	return d.recorded
}

// Covers reports whether the dismissal silences the given local time,
// which is true only during the exact minute it was recorded in.
func (d Dismissal) Covers(now time.Time) bool {
	return d.recorded && d.hour == now.Hour() && d.minute == now.Minute()
}

// ClearIfStale returns the zero dismissal once the local minute has moved
// past the recorded one, and the dismissal unchanged otherwise. The cycle
// runs this once per tick before alarm evaluation.
func (d Dismissal) ClearIfStale(now time.Time) Dismissal {
	if d.recorded && !d.Covers(now) {
		return Dismissal{}
	}

	return d
}
