// Package term renders the clock grid on an alternate-screen terminal using
// tcell. It implements the cycle.Surface contract: tiles are drawn cell by
// cell with a border box per clock, and input is read from the tcell event
// stream with a bounded wait.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/trepidity/world-clock/internal/cycle"
	"github.com/trepidity/world-clock/internal/layout"
)

// eventBuffer sizes the tcell event channel; bursts beyond it block the
// tcell reader briefly, which is harmless at this cadence.
const eventBuffer = 16

// Surface draws frames on a tcell screen.
type Surface struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// New initializes the terminal (alternate screen, raw input) and returns a
// surface ready for the render cycle. The caller must Close it to restore
// the terminal, including on error paths.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return newSurface(screen), nil
}

// newSurface wraps an initialized screen. Split from New so tests can drive
// the surface with tcell's simulation screen.
func newSurface(screen tcell.Screen) *Surface {
	s := &Surface{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}

	go screen.ChannelEvents(s.events, s.done)

	return s
}

// Close stops the event reader and restores the terminal state.
func (s *Surface) Close() {
	close(s.done)
	s.screen.Fini()
}

// Size returns the current terminal dimensions in cells.
func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// BeginFrame clears the canvas for the next frame.
func (s *Surface) BeginFrame() {
	s.screen.Clear()
}

// EndFrame flushes the frame to the terminal.
func (s *Surface) EndFrame() error {
	s.screen.Show()
	return nil
}

// DrawUnit renders one clock tile: a border box titled with the clock name
// and the vertically centered name/time/date block. The border turns red
// while the alarm highlight is on.
func (s *Surface) DrawUnit(unit cycle.Unit) {
	rect := unit.Rect
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if unit.Highlight {
		border = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	s.drawBox(rect, border)
	s.drawTitle(rect, unit.Label, border)

	innerHeight := rect.Height - 2
	pad := layout.VerticalPad(innerHeight, cycle.ContentLines())

	nameStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	timeStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	dateStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	y := rect.Y + 1 + pad
	s.drawCentered(rect, y, unit.Label, nameStyle)
	s.drawCentered(rect, y+2, unit.Time, timeStyle)
	s.drawCentered(rect, y+3, unit.Date, dateStyle)
}

// PollInput waits up to timeout for a key event and maps it to a signal.
// Resize events trigger a screen sync and keep waiting; the next tick picks
// the new size up through Size.
func (s *Surface) PollInput(timeout time.Duration) cycle.Signal {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-s.events:
			if !ok {
				return cycle.SignalQuit
			}

			switch event := event.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if signal, mapped := mapKey(event); mapped {
					return signal
				}
			}
		case <-timer.C:
			return cycle.SignalNone
		}
	}
}

// mapKey translates a key event into a cycle signal.
// q and Ctrl-C quit; space and d dismiss.
func mapKey(event *tcell.EventKey) (cycle.Signal, bool) {
	switch event.Key() {
	case tcell.KeyCtrlC:
		return cycle.SignalQuit, true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			return cycle.SignalQuit, true
		case 'd', 'D', ' ':
			return cycle.SignalDismiss, true
		}
	}

	return cycle.SignalNone, false
}

// drawBox draws the tile border with line-drawing runes.
func (s *Surface) drawBox(rect layout.Rect, style tcell.Style) {
	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1

	for x := rect.X + 1; x < right; x++ {
		s.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}

	for y := rect.Y + 1; y < bottom; y++ {
		s.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}

	s.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, rect.Y, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawTitle embeds the clock name in the top border.
func (s *Surface) drawTitle(rect layout.Rect, title string, style tcell.Style) {
	runes := []rune(title)
	limit := rect.Width - 2
	if limit <= 0 {
		return
	}

	if len(runes) > limit {
		runes = runes[:limit]
	}

	for i, r := range runes {
		s.screen.SetContent(rect.X+1+i, rect.Y, r, nil, style)
	}
}

// drawCentered writes text horizontally centered within the tile interior,
// clipped to the inner width.
func (s *Surface) drawCentered(rect layout.Rect, y int, text string, style tcell.Style) {
	if y <= rect.Y || y >= rect.Y+rect.Height-1 {
		return
	}

	innerWidth := rect.Width - 2
	runes := []rune(text)

	if len(runes) > innerWidth {
		runes = runes[:innerWidth]
	}

	x := rect.X + 1 + (innerWidth-len(runes))/2
	for i, r := range runes {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
