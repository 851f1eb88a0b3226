package worldclock

import "time"

// Clock pairs a display label with the zone rule used to convert instants.
// Clocks are immutable after construction.
type Clock struct {
	// Name is the label shown above the clock, typically the zone identifier.
	Name string
	// Location is the zone rule applied to the shared instant.
	Location *time.Location
}

// At returns the wall-clock time of the given instant in the clock's zone.
// Every clock in a frame must be converted from the same instant so the
// display never shows skewed seconds between tiles.
func (c Clock) At(instant time.Time) time.Time {
	return instant.In(c.Location)
}
