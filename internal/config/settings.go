// ABOUTME: Tool settings loaded from config.toml in the nvup home
// ABOUTME: Covers the editor command line and the operation journal toggle

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// settingsV0 is the initial settings schema version.
	settingsV0 = 0

	// CurrentSettingsVersion points at the currently supported schema.
	CurrentSettingsVersion = settingsV0
)

// Settings is the parsed content of config.toml. Absent fields take the
// defaults from DefaultSettings, so callers always see a fully populated
// value.
type Settings struct {
	Version int             `toml:"version"`
	Editor  EditorSettings  `toml:"editor"`
	Journal JournalSettings `toml:"journal"`
}

// EditorSettings names the editor binary and any arguments placed before
// user-supplied ones on launch.
type EditorSettings struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// JournalSettings controls the operation journal. Disabled is false by
// default so the zero value keeps journaling on.
type JournalSettings struct {
	Disabled bool `toml:"disabled"`
}

// DefaultSettings returns the settings used when config.toml is absent.
func DefaultSettings() *Settings {
	return &Settings{
		Version: CurrentSettingsVersion,
		Editor: EditorSettings{
			Command: "nvim",
		},
	}
}

// LoadSettings reads config.toml from path. A missing file yields
// DefaultSettings; fields set in the file override the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	s, err := ParseSettingsTOML(data)
	if err != nil {
		return nil, err
	}
	applySettingsDefaults(s)
	return s, nil
}

// ParseSettingsTOML parses raw TOML bytes into Settings. A version field set
// to anything but the supported schema version is an error.
func ParseSettingsTOML(data []byte) (*Settings, error) {
	s := &Settings{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings TOML: %w", err)
	}
	if s.Version != 0 && s.Version != CurrentSettingsVersion {
		return nil, fmt.Errorf("unsupported settings version %d (expected %d)", s.Version, CurrentSettingsVersion)
	}
	return s, nil
}

func applySettingsDefaults(s *Settings) {
	defaults := DefaultSettings()
	if s.Editor.Command == "" {
		s.Editor.Command = defaults.Editor.Command
	}
}

// SaveSettings persists settings to path.
func SaveSettings(path string, s *Settings) error {
	if s == nil {
		return errors.New("cannot save nil settings")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
