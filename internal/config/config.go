package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trepidity/world-clock/internal/domain/worldclock"
)

// Settings holds the persisted user configuration: which zones to display
// and which alarms to ring. The file is overwritten whole on every save;
// the last writer wins.
type Settings struct {
	// Zones lists the IANA zone identifiers to display, in tile order.
	Zones []string `yaml:"zones"`
	// Alarms lists local-time alarms as "HH:MM" strings.
	Alarms []string `yaml:"alarms"`
}

const (
	// DefaultFilename is the settings file name inside the config directory.
	DefaultFilename = "settings.yaml"

	// DefaultFilePermissions is the file mode for the settings file.
	DefaultFilePermissions = 0o600

	// defaultDirName is the per-user configuration directory for this tool.
	defaultDirName = "world-clock"

	// defaultDirPermissions is the mode for the created config directory.
	defaultDirPermissions = 0o700
)

var (
	// ErrNotFound is returned by Load when no settings file exists yet.
	ErrNotFound = errors.New("settings not found")

	// errSettingsNotSet is returned when a nil settings value is saved.
	errSettingsNotSet = errors.New("settings are not set")

	// errEmptyZone is returned when a persisted zone entry is blank.
	errEmptyZone = errors.New("zone identifier must not be empty")
)

// DefaultPath resolves the per-user settings location, creating the
// directory when missing.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	dir := filepath.Join(base, defaultDirName)
	if err = os.MkdirAll(dir, defaultDirPermissions); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	return filepath.Join(dir, DefaultFilename), nil
}

// Load reads and validates settings from the provided path. A missing file
// is reported as ErrNotFound so callers can treat it as a first run.
func Load(path string) (*Settings, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var settings Settings
	if err = yaml.Unmarshal(contents, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save validates and writes settings to the provided path, replacing the
// whole file.
func Save(path string, settings *Settings) error {
	if settings == nil {
		return errSettingsNotSet
	}

	if err := Validate(settings); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the stored values for shape: alarm strings must parse as
// "HH:MM" and zone entries must be non-blank. Whether a zone identifier
// actually resolves is checked where the clocks are built, since that is
// where the zone database is consulted anyway.
func Validate(settings *Settings) error {
	for _, zone := range settings.Zones {
		if strings.TrimSpace(zone) == "" {
			return errEmptyZone
		}
	}

	if _, err := worldclock.ParseAlarmSet(settings.Alarms); err != nil {
		return err
	}

	return nil
}
