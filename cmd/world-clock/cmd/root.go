package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trepidity/world-clock/internal/logger"
	"github.com/trepidity/world-clock/internal/service/app"
	"github.com/trepidity/world-clock/internal/version"
)

var (
	// cfgPath stores the settings file path override.
	cfgPath string
	// alarms stores the CLI-supplied "HH:MM" alarm strings.
	alarms []string
	// gui selects the windowed backend.
	gui bool
	// logLevel sets the logging verbosity.
	logLevel string

	// rootCmd represents the base command displaying the clock grid.
	rootCmd = &cobra.Command{
		Use:   "world-clock [zone...]",
		Short: "Display the current time across multiple time zones.",
		Long: `Displays a tiled grid of clocks, one per configured time zone, in the
terminal or in a window (--gui).

Zones are IANA identifiers such as "America/New_York" or "Asia/Tokyo", given
as positional arguments. Zones and alarms supplied on the command line are
persisted and become the defaults for the next run; without arguments the
previously saved selection is used.

Alarms fire on local wall-clock time and highlight every displayed clock for
the matching minute. Press space or d to silence a ringing alarm for the rest
of the minute, and q or Ctrl-C to quit.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return app.Run(ctx, &app.Options{
				ConfigPath: cfgPath,
				Zones:      args,
				Alarms:     alarms,
				GUI:        gui,
			})
		},
	}
)

// Execute runs the world-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"path to settings file (defaults to the per-user config dir)")
	rootCmd.Flags().StringSliceVar(&alarms, "alarms", nil,
		"alarms in HH:MM local time (repeat or comma-separate for several)")
	rootCmd.Flags().BoolVar(&gui, "gui", false, "run in windowed mode")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
}
