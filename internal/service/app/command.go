package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trepidity/world-clock/internal/config"
	"github.com/trepidity/world-clock/internal/cycle"
	"github.com/trepidity/world-clock/internal/domain/worldclock"
	"github.com/trepidity/world-clock/internal/logger"
	"github.com/trepidity/world-clock/internal/timesource"
	"github.com/trepidity/world-clock/internal/ui/term"
)

// Options configures a world-clock run.
type Options struct {
	// ConfigPath overrides the settings location; defaults to the per-user
	// config directory.
	ConfigPath string
	// Zones are the zone identifiers given on the command line. When
	// present they win over stored settings and are persisted.
	Zones []string
	// Alarms are "HH:MM" strings given on the command line, with the same
	// win-and-persist rule as Zones.
	Alarms []string
	// GUI selects the windowed backend instead of the terminal one.
	GUI bool

	// Announce overrides the default-zone guidance writer, used by tests.
	Announce func(format string, args ...any)
}

const (
	// defaultZone is displayed when neither CLI nor settings name any zone.
	defaultZone = "Europe/London"

	// defaultZoneDelay gives the user time to read the guidance before the
	// screen is taken over.
	defaultZoneDelay = 3 * time.Second
)

// Run resolves zones and alarms, persists CLI-supplied values and drives the
// render cycle on the selected backend until quit or cancellation.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "world-clock")

	path := settingsPath(ctx, opts.ConfigPath)
	stored := loadSettings(ctx, path)

	zones, zonesFromCLI := resolve(opts.Zones, stored.Zones)
	alarmStrings, alarmsFromCLI := resolve(opts.Alarms, stored.Alarms)

	// Malformed input fails before any screen setup.
	alarms, err := worldclock.ParseAlarmSet(alarmStrings)
	if err != nil {
		return err
	}

	// Persist before the default kicks in: an implicit default is not the
	// user's configuration.
	if (zonesFromCLI || alarmsFromCLI) && path != "" {
		saveSettings(ctx, path, &config.Settings{Zones: zones, Alarms: alarmStrings})
	}

	if len(zones) == 0 {
		zones = []string{defaultZone}

		if err = announceDefault(ctx, opts.Announce); err != nil {
			return err
		}
	}

	clocks, err := buildClocks(zones)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Starting render cycle",
		"zones", zones,
		"alarms", alarms.Strings(),
		"windowed", opts.GUI,
	)

	cycleOpts := &cycle.Options{
		Clocks: clocks,
		Alarms: alarms,
		Source: timesource.System(),
	}

	if opts.GUI {
		return runWindowed(ctx, cycleOpts)
	}

	return runTerminal(ctx, cycleOpts)
}

// settingsPath picks the explicit path or resolves the per-user default.
// A missing config directory only disables persistence.
func settingsPath(ctx context.Context, override string) string {
	if override != "" {
		return override
	}

	path, err := config.DefaultPath()
	if err != nil {
		logger.Debugf(ctx, "config dir unavailable, persistence disabled: %v", err)
		return ""
	}

	return path
}

// loadSettings reads stored settings, treating every failure as a first run.
func loadSettings(ctx context.Context, path string) *config.Settings {
	if path == "" {
		return &config.Settings{}
	}

	settings, err := config.Load(path)

	switch {
	case err == nil:
		return settings
	case errors.Is(err, config.ErrNotFound):
	default:
		logger.Debugf(ctx, "ignoring unreadable settings: %v", err)
	}

	return &config.Settings{}
}

// saveSettings persists best-effort; failures are logged and swallowed.
func saveSettings(ctx context.Context, path string, settings *config.Settings) {
	if err := config.Save(path, settings); err != nil {
		logger.Debugf(ctx, "settings not saved: %v", err)
	}
}

// resolve applies the CLI-wins rule and reports whether CLI values were used.
func resolve(cli, stored []string) ([]string, bool) {
	if len(cli) > 0 {
		return cli, true
	}

	return stored, false
}

// buildClocks validates every zone identifier against the zone database and
// constructs the clock list in argument order.
func buildClocks(zones []string) ([]worldclock.Clock, error) {
	clocks := make([]worldclock.Clock, 0, len(zones))

	for _, name := range zones {
		location, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
		}

		clocks = append(clocks, worldclock.Clock{Name: name, Location: location})
	}

	return clocks, nil
}

// announceDefault explains the fallback on stdout and waits so the message
// is readable before the display starts.
func announceDefault(ctx context.Context, announce func(format string, args ...any)) error {
	if announce == nil {
		announce = func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		}
	}

	announce("No time zones specified and no configuration found.")
	announce("To customize, run: world-clock <zone>...")
	announce("Example: world-clock America/New_York Europe/London")
	announce("Defaulting to %s in %v...", defaultZone, defaultZoneDelay)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(defaultZoneDelay):
		return nil
	}
}

// runTerminal sets up the tcell surface and tears the terminal down before
// any error is reported.
func runTerminal(ctx context.Context, opts *cycle.Options) error {
	surface, err := term.New()
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer surface.Close()

	return cycle.Run(ctx, surface, opts)
}
