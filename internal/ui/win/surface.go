// Package win renders the clock grid in a Fyne window. It implements the
// same cycle.Surface contract as the terminal backend: the cycle keeps
// polling input at its usual cadence while the window content is refreshed
// at a slower visual interval, mirroring how a windowed clock only needs a
// couple of repaints per second.
package win

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/trepidity/world-clock/internal/cycle"
)

const (
	// DefaultRefreshInterval throttles window repaints; the time line has
	// second resolution, so 500 ms never skips a displayed second.
	DefaultRefreshInterval = 500 * time.Millisecond

	// signalBuffer absorbs key presses arriving between input polls.
	signalBuffer = 8

	// tileInset is the pixel gap between neighbouring tiles.
	tileInset = 8
)

var (
	backgroundColor = color.Black
	tileColor       = color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	alarmTileColor  = color.NRGBA{R: 0x66, G: 0x10, B: 0x10, A: 0xff}
	borderColor     = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	alarmBorder     = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	nameColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	timeColor       = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	dateColor       = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// tile is one clock card: a bordered background with the centered
// name/time/date column stacked on top.
type tile struct {
	background *canvas.Rectangle
	name       *canvas.Text
	time       *canvas.Text
	date       *canvas.Text
	box        *fyne.Container
}

func newTile() *tile {
	t := &tile{
		background: canvas.NewRectangle(tileColor),
		name:       canvas.NewText("", nameColor),
		time:       canvas.NewText("", timeColor),
		date:       canvas.NewText("", dateColor),
	}

	t.background.StrokeWidth = 2
	t.background.StrokeColor = borderColor
	t.background.CornerRadius = 6

	t.name.TextSize = 20
	t.name.TextStyle = fyne.TextStyle{Bold: true}
	t.name.Alignment = fyne.TextAlignCenter

	t.time.TextSize = 40
	t.time.TextStyle = fyne.TextStyle{Bold: true}
	t.time.Alignment = fyne.TextAlignCenter

	t.date.TextSize = 15
	t.date.Alignment = fyne.TextAlignCenter

	column := container.NewVBox(t.name, t.time, t.date)
	t.box = container.NewStack(t.background, container.NewCenter(column))

	return t
}

// apply updates the tile from a render unit and positions it on the canvas.
func (t *tile) apply(unit cycle.Unit) {
	t.name.Text = unit.Label
	t.time.Text = unit.Time
	t.date.Text = unit.Date

	if unit.Highlight {
		t.background.FillColor = alarmTileColor
		t.background.StrokeColor = alarmBorder
	} else {
		t.background.FillColor = tileColor
		t.background.StrokeColor = borderColor
	}

	width := unit.Rect.Width - 2*tileInset
	height := unit.Rect.Height - 2*tileInset

	if width < 0 {
		width = 0
	}

	if height < 0 {
		height = 0
	}

	t.box.Move(fyne.NewPos(float32(unit.Rect.X+tileInset), float32(unit.Rect.Y+tileInset)))
	t.box.Resize(fyne.NewSize(float32(width), float32(height)))
	t.box.Show()
}

// Surface implements cycle.Surface on a Fyne window. The cycle runs on its
// own goroutine; all widget work happens on the Fyne thread via fyne.Do.
type Surface struct {
	app     fyne.App
	window  fyne.Window
	content *fyne.Container
	tiles   []*tile
	pending []cycle.Unit

	signals chan cycle.Signal

	refreshEvery  time.Duration
	lastApplied   time.Time
	lastHighlight bool
	applied       bool
}

// New wires a surface into the given window: dark background, key bindings
// and a close handler that feeds a quit signal to the cycle.
func New(app fyne.App, window fyne.Window) *Surface {
	s := &Surface{
		app:          app,
		window:       window,
		content:      container.NewWithoutLayout(),
		signals:      make(chan cycle.Signal, signalBuffer),
		refreshEvery: DefaultRefreshInterval,
	}

	background := canvas.NewRectangle(backgroundColor)
	window.SetContent(container.NewStack(background, s.content))

	window.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'q', 'Q':
			s.send(cycle.SignalQuit)
		case 'd', 'D', ' ':
			s.send(cycle.SignalDismiss)
		}
	})

	// Closing the window quits the cycle instead of tearing the app down
	// underneath it.
	window.SetCloseIntercept(func() {
		s.send(cycle.SignalQuit)
	})

	return s
}

// send drops the signal if the buffer is full; a lost duplicate key press
// within one poll interval is not observable.
func (s *Surface) send(signal cycle.Signal) {
	select {
	case s.signals <- signal:
	default:
	}
}

// Size returns the window canvas dimensions in pixels.
func (s *Surface) Size() (int, int) {
	var size fyne.Size

	fyne.DoAndWait(func() {
		size = s.window.Canvas().Size()
	})

	return int(size.Width), int(size.Height)
}

// BeginFrame resets the pending unit list for the next frame.
func (s *Surface) BeginFrame() {
	s.pending = s.pending[:0]
}

// DrawUnit queues one tile update; the widget tree is touched in EndFrame.
func (s *Surface) DrawUnit(unit cycle.Unit) {
	s.pending = append(s.pending, unit)
}

// EndFrame applies the queued frame on the Fyne thread. Repaints are
// throttled to the refresh interval, except when the alarm highlight flips,
// which must show immediately.
func (s *Surface) EndFrame() error {
	highlight := len(s.pending) > 0 && s.pending[0].Highlight

	throttled := s.applied &&
		time.Since(s.lastApplied) < s.refreshEvery &&
		highlight == s.lastHighlight
	if throttled {
		return nil
	}

	units := make([]cycle.Unit, len(s.pending))
	copy(units, s.pending)

	fyne.DoAndWait(func() {
		s.applyFrame(units)
	})

	s.applied = true
	s.lastApplied = time.Now()
	s.lastHighlight = highlight

	return nil
}

// applyFrame syncs the tile widgets with the frame. Runs on the Fyne thread.
func (s *Surface) applyFrame(units []cycle.Unit) {
	for len(s.tiles) < len(units) {
		t := newTile()
		s.tiles = append(s.tiles, t)
		s.content.Add(t.box)
	}

	for i, t := range s.tiles {
		if i < len(units) {
			t.apply(units[i])
		} else {
			t.box.Hide()
		}
	}

	s.content.Refresh()
}

// PollInput waits up to timeout for a key signal.
func (s *Surface) PollInput(timeout time.Duration) cycle.Signal {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case signal := <-s.signals:
		return signal
	case <-timer.C:
		return cycle.SignalNone
	}
}

// Stop ends the Fyne event loop once the cycle has finished.
func (s *Surface) Stop() {
	fyne.Do(s.app.Quit)
}
