package timesource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSystemNow checks the system source tracks the host clock.
func TestSystemNow(t *testing.T) {
	t.Parallel()

	src := System()
	require.WithinDuration(t, time.Now(), src.Now(), time.Second)
}

// TestFixed checks pinning, setting and advancing the fake source.
func TestFixed(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)
	src := &Fixed{Instant: instant}

	require.Equal(t, instant, src.Now())
	require.Equal(t, instant, src.Now(), "repeated reads return the same instant")

	src.Advance(time.Minute)
	require.Equal(t, instant.Add(time.Minute), src.Now())

	src.Set(instant)
	require.Equal(t, instant, src.Now())
}
