// Package settings provides TOML-backed user preferences for the
// notification presenter.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/flattr/adblockpluschrome/internal/display"
	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/platform"
)

// File permission constants.
const (
	// FileModeDir is the permission for the settings directory.
	FileModeDir os.FileMode = 0o755
	// FileModeFile is the permission for the settings file.
	FileModeFile os.FileMode = 0o644
)

// Settings holds all user preferences.
type Settings struct {
	Notifications Notifications `toml:"notifications"`
	Platform      Platform      `toml:"platform"`
	Logging       Logging       `toml:"logging"`
}

// Notifications configures notification presentation.
type Notifications struct {
	// Enabled globally toggles notification presentation.
	Enabled bool `toml:"enabled"`
	// IgnoredTypes lists optional notification types the user opted out
	// of. Non-optional types are never skipped regardless of this list.
	IgnoredTypes []string `toml:"ignored-types"`
	// IconPath is the icon shown on native notifications.
	IconPath string `toml:"icon-path"`
}

// Platform carries the platform metadata used for capability resolution.
type Platform struct {
	Name        string `toml:"name"`
	Application string `toml:"application"`
	Version     string `toml:"version"`
}

// Logging configures the structured logger.
type Logging struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Notifications: Notifications{
			Enabled: true,
		},
		Platform: Platform{
			Name:        "chromium",
			Application: "adblockplus",
			Version:     "50.0",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// DefaultPath returns the default settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: determine config directory: %w", err)
	}
	return filepath.Join(dir, "abp-notifier", "settings.toml"), nil
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: parse %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes settings to path, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("settings: create directory: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

// normalize drops ignored-type entries that are unknown or not optional.
func (s *Settings) normalize() {
	kept := s.Notifications.IgnoredTypes[:0]
	for _, value := range s.Notifications.IgnoredTypes {
		t, err := notification.ParseType(value)
		if err != nil || !display.IsOptional(t) {
			continue
		}
		kept = append(kept, value)
	}
	s.Notifications.IgnoredTypes = kept
}

// IsIgnored reports whether the user opted out of the given type. Only
// optional types can be ignored.
func (s *Settings) IsIgnored(t notification.Type) bool {
	if !display.IsOptional(t) {
		return false
	}
	for _, value := range s.Notifications.IgnoredTypes {
		if value == string(t) {
			return true
		}
	}
	return false
}

// SetIgnored adds or removes an optional type from the ignored list and
// reports whether the list changed.
func (s *Settings) SetIgnored(t notification.Type, ignored bool) bool {
	if !display.IsOptional(t) {
		return false
	}
	present := s.IsIgnored(t)
	switch {
	case ignored && !present:
		s.Notifications.IgnoredTypes = append(s.Notifications.IgnoredTypes, string(t))
		return true
	case !ignored && present:
		kept := s.Notifications.IgnoredTypes[:0]
		for _, value := range s.Notifications.IgnoredTypes {
			if value != string(t) {
				kept = append(kept, value)
			}
		}
		s.Notifications.IgnoredTypes = kept
		return true
	}
	return false
}

// PlatformInfo converts the configured platform metadata into the value
// consumed by the capability resolver.
func (s *Settings) PlatformInfo() platform.Info {
	return platform.Info{
		Platform:        s.Platform.Name,
		Application:     s.Platform.Application,
		PlatformVersion: s.Platform.Version,
	}
}
