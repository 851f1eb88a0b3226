// Package timesource abstracts the wall clock behind a small interface so the
// render cycle can be driven by a fixed instant in tests. Each tick samples
// the source exactly once and converts that shared instant for every clock.
package timesource

import "time"

// Source yields the instant a render tick is evaluated at.
type Source interface {
	// Now returns the current instant.
	Now() time.Time
}

// systemSource reads the host wall clock.
type systemSource struct{}

// System returns a Source backed by the host wall clock.
func System() Source {
	return systemSource{}
}

// Now implements Source for systemSource.
func (systemSource) Now() time.Time {
	return time.Now()
}

// Fixed is a Source pinned to a settable instant, used by tests to step the
// cycle through specific minutes.
type Fixed struct {
	// Instant is the value returned by Now.
	Instant time.Time
}

// Now implements Source for Fixed.
func (f *Fixed) Now() time.Time {
	return f.Instant
}

// Set repins the source to the given instant.
func (f *Fixed) Set(t time.Time) {
	f.Instant = t
}

// Advance moves the pinned instant forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}
