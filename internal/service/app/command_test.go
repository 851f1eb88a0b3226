package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trepidity/world-clock/internal/config"
)

// TestResolve checks the CLI-wins precedence rule.
func TestResolve(t *testing.T) {
	t.Parallel()

	values, fromCLI := resolve([]string{"UTC"}, []string{"Asia/Tokyo"})
	require.Equal(t, []string{"UTC"}, values)
	require.True(t, fromCLI)

	values, fromCLI = resolve(nil, []string{"Asia/Tokyo"})
	require.Equal(t, []string{"Asia/Tokyo"}, values)
	require.False(t, fromCLI)

	values, fromCLI = resolve(nil, nil)
	require.Empty(t, values)
	require.False(t, fromCLI)
}

// TestBuildClocks validates zone resolution and argument order.
func TestBuildClocks(t *testing.T) {
	t.Parallel()

	clocks, err := buildClocks([]string{"UTC", "Europe/London", "Asia/Tokyo"})
	require.NoError(t, err)
	require.Len(t, clocks, 3)
	require.Equal(t, "Europe/London", clocks[1].Name)
	require.NotNil(t, clocks[1].Location)

	_, err = buildClocks([]string{"Atlantis/Nowhere"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Atlantis/Nowhere")
}

// TestLoadSettingsTreatsFailuresAsFirstRun covers the best-effort read path.
func TestLoadSettingsTreatsFailuresAsFirstRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	require.Empty(t, loadSettings(ctx, "").Zones)
	require.Empty(t, loadSettings(ctx, filepath.Join(t.TempDir(), "absent.yaml")).Zones)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, &config.Settings{Zones: []string{"UTC"}}))
	require.Equal(t, []string{"UTC"}, loadSettings(ctx, path).Zones)
}

// TestRunPersistsCLIValues checks that CLI-supplied zones and alarms land in
// the settings file even when a later step fails, matching the save-then-use
// order of the original flow.
func TestRunPersistsCLIValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	// The bogus zone aborts the run after the save, keeping the test away
	// from any terminal setup.
	err := Run(context.Background(), &Options{
		ConfigPath: path,
		Zones:      []string{"Atlantis/Nowhere"},
		Alarms:     []string{"08:30"},
	})
	require.Error(t, err)

	saved, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Atlantis/Nowhere"}, saved.Zones)
	require.Equal(t, []string{"08:30"}, saved.Alarms)
}

// TestRunRejectsMalformedAlarm ensures bad alarms fail before anything is
// persisted or displayed.
func TestRunRejectsMalformedAlarm(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	err := Run(context.Background(), &Options{
		ConfigPath: path,
		Zones:      []string{"UTC"},
		Alarms:     []string{"8h30"},
	})
	require.Error(t, err)

	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrNotFound)
}

// TestAnnounceDefaultHonorsCancellation verifies the guidance delay can be
// interrupted.
func TestAnnounceDefaultHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var lines int
	err := announceDefault(ctx, func(string, ...any) { lines++ })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 4, lines)
}
