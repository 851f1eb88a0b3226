package app

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/trepidity/world-clock/internal/cycle"
	"github.com/trepidity/world-clock/internal/ui/win"
)

const (
	windowTitle = "World Clock"

	defaultWindowWidth  = 960
	defaultWindowHeight = 600
)

// runWindowed drives the cycle against the Fyne surface. Fyne insists on
// owning the main goroutine, so the cycle runs on a worker started from the
// app lifecycle hook and quits the event loop when it finishes.
func runWindowed(ctx context.Context, opts *cycle.Options) error {
	application := fyneapp.New()
	window := application.NewWindow(windowTitle)
	window.Resize(fyne.NewSize(defaultWindowWidth, defaultWindowHeight))

	surface := win.New(application, window)

	var runErr error

	done := make(chan struct{})

	application.Lifecycle().SetOnStarted(func() {
		go func() {
			runErr = cycle.Run(ctx, surface, opts)
			close(done)
			surface.Stop()
		}()
	})

	window.ShowAndRun()

	// ShowAndRun returns after Stop; wait for the worker so runErr is settled.
	<-done

	return runErr
}
