// Package paths resolves configuration and data file locations for the
// tracker. The database lives under a user-profile-relative directory; the
// shipped template database is looked up next to the executable.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DBFileName is the tracker database file name, shared by the user store and
// the shipped template.
const DBFileName = "wiggle_tracker.db"

// SettingsFileName is the persisted key-value settings file.
const SettingsFileName = "settings.yaml"

// LogFileName is the application log file.
const LogFileName = "wiggle.log"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "WIGGLE_CONFIG_DIR"
	EnvDataDir   = "WIGGLE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	executable    func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	executable:    os.Executable,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/wiggle (fallback ~/.config/wiggle)
// macOS:   ~/Library/Application Support/wiggle
// Windows: %APPDATA%/wiggle
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "wiggle"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "wiggle"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "wiggle"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/wiggle (fallback ~/.local/share/wiggle)
// macOS:   ~/Library/Application Support/wiggle
// Windows: %APPDATA%/wiggle
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "wiggle"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "wiggle"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "wiggle"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > WIGGLE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config value > WIGGLE_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// TemplateDBPath returns the path of the template database shipped next to
// the executable. An empty string means no template location could be
// determined; Open treats a missing template as "no seeding".
func TemplateDBPath() string {
	exe, err := platformDir.executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), DBFileName)
}
