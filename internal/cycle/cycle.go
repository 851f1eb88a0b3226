package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/trepidity/world-clock/internal/domain/worldclock"
	"github.com/trepidity/world-clock/internal/layout"
	"github.com/trepidity/world-clock/internal/timesource"
)

// Signal is an abstract input event consumed by the loop.
type Signal int

const (
	// SignalNone means the poll timed out with no input.
	SignalNone Signal = iota
	// SignalQuit terminates the loop.
	SignalQuit
	// SignalDismiss silences the active alarm for the rest of the minute.
	SignalDismiss
)

// Unit is one clock's render instruction for a single frame.
type Unit struct {
	// Rect is the clock's tile on the canvas.
	Rect layout.Rect
	// Label is the clock name shown in the tile.
	Label string
	// Time is the zone-converted wall time, HH:MM:SS.
	Time string
	// Date is the zone-converted calendar date, YYYY-MM-DD.
	Date string
	// Highlight marks the alarm-active visual state. The flag is global:
	// any matching alarm highlights every tile in the frame.
	Highlight bool
}

// Surface is the minimal contract a display backend implements. Draw calls
// are synchronous; the frame is complete when EndFrame returns.
type Surface interface {
	// Size returns the current canvas dimensions.
	Size() (width, height int)
	// BeginFrame prepares the canvas for a fresh frame.
	BeginFrame()
	// DrawUnit renders one clock tile.
	DrawUnit(unit Unit)
	// EndFrame flushes the frame to the display.
	EndFrame() error
	// PollInput blocks up to timeout for the next input signal.
	PollInput(timeout time.Duration) Signal
}

const (
	// DefaultPollTimeout bounds the input wait between ticks.
	DefaultPollTimeout = 100 * time.Millisecond

	timeLayout = "15:04:05"
	dateLayout = "2006-01-02"

	// contentLines is the fixed tile content height: name, blank, time, date.
	contentLines = 4
)

// Options configures a render cycle run.
type Options struct {
	// Clocks to display, in tile order.
	Clocks []worldclock.Clock
	// Alarms evaluated against local time each tick.
	Alarms worldclock.AlarmSet
	// Source provides the shared instant per tick. Defaults to the system clock.
	Source timesource.Source
	// PollTimeout overrides the input wait bound. Defaults to DefaultPollTimeout.
	PollTimeout time.Duration
}

// Frame is the outcome of one tick: the render units plus the threaded
// alarm state.
type Frame struct {
	// Units holds one render instruction per clock.
	Units []Unit
	// Dismissal is the dismissal state after stale clearing.
	Dismissal worldclock.Dismissal
	// Active reports whether the alarm highlight is on this frame.
	Active bool
}

// BuildFrame computes a single tick. It clears a stale dismissal, evaluates
// the alarms at the instant's local time, partitions the canvas and converts
// the shared instant for every clock. Pure: same inputs, same frame.
func BuildFrame(
	instant time.Time,
	clocks []worldclock.Clock,
	alarms worldclock.AlarmSet,
	previous worldclock.Dismissal,
	canvas layout.Rect,
) Frame {
	local := instant.Local()

	// Stale dismissals go before evaluation so a dismissal silences exactly
	// the remainder of its minute.
	dismissal := previous.ClearIfStale(local)
	active := alarms.IsActive(local, dismissal)

	rects := layout.Grid(len(clocks), canvas)
	units := make([]Unit, 0, len(clocks))

	for i, clock := range clocks {
		converted := clock.At(instant)

		units = append(units, Unit{
			Rect:      rects[i],
			Label:     clock.Name,
			Time:      converted.Format(timeLayout),
			Date:      converted.Format(dateLayout),
			Highlight: active,
		})
	}

	return Frame{
		Units:     units,
		Dismissal: dismissal,
		Active:    active,
	}
}

// ContentLines returns the fixed number of text lines in a tile, used by
// surfaces for vertical centering.
func ContentLines() int {
	return contentLines
}

// Run executes the cycle until a quit signal or context cancellation.
// The surface is drawn once per tick; the canvas size is re-read every tick
// so resizes take effect on the next frame.
func Run(ctx context.Context, surface Surface, opts *Options) error {
	source := opts.Source
	if source == nil {
		source = timesource.System()
	}

	timeout := opts.PollTimeout
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}

	var dismissal worldclock.Dismissal

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		instant := source.Now()
		width, height := surface.Size()

		frame := BuildFrame(instant, opts.Clocks, opts.Alarms, dismissal,
			layout.Rect{Width: width, Height: height})
		dismissal = frame.Dismissal

		surface.BeginFrame()

		for _, unit := range frame.Units {
			surface.DrawUnit(unit)
		}

		if err := surface.EndFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		switch surface.PollInput(timeout) {
		case SignalQuit:
			return nil
		case SignalDismiss:
			// Dismiss only has an effect while an alarm is ringing.
			if frame.Active {
				dismissal = worldclock.Dismiss(instant.Local())
			}
		case SignalNone:
		}
	}
}
