package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks shape validation for zones and alarm strings.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(&Settings{}))

	require.NoError(t, Validate(&Settings{
		Zones:  []string{"Europe/London", "Asia/Tokyo"},
		Alarms: []string{"08:30", "17:00"},
	}))

	require.Error(t, Validate(&Settings{Zones: []string{" "}}))
	require.Error(t, Validate(&Settings{Alarms: []string{"25:99"}}))
}

// TestSaveLoadRoundtrip ensures settings reload to the values that were
// written, so the next run reconstructs the same clocks and alarms.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings := &Settings{
		Zones:  []string{"America/New_York", "Europe/London"},
		Alarms: []string{"08:30"},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// Saves replace the file wholesale.
	require.NoError(t, Save(path, &Settings{Zones: []string{"UTC"}}))

	loaded, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"UTC"}, loaded.Zones)
	require.Empty(t, loaded.Alarms)
}

// TestLoadMissingFile verifies the first-run sentinel.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, ErrNotFound)
}

// TestLoadRejectsInvalidContents covers malformed YAML and bad values.
func TestLoadRejectsInvalidContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("zones: [unterminated"), 0o600))

	_, err := Load(garbled)
	require.Error(t, err)

	badAlarm := filepath.Join(dir, "bad-alarm.yaml")
	require.NoError(t, os.WriteFile(badAlarm, []byte("alarms:\n  - \"8h30\"\n"), 0o600))

	_, err = Load(badAlarm)
	require.Error(t, err)
}

// TestSaveNil guards the nil-settings error path.
func TestSaveNil(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "s.yaml"), nil))
}
