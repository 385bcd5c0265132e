// ABOUTME: Centralized path resolution for the nvup store and the Neovim config dir
// ABOUTME: Respects NVUP_HOME and NVUP_NVIM_DIR environment variables for isolation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Well-known entry names inside the nvup home.
const (
	ProfilesDirName  = "profiles"
	InitMarkerName   = "init_done"
	LastUseName      = "last_use"
	SettingsFileName = "config.toml"
	EventsLogName    = "events.log"
)

// Paths holds the two locations everything else derives from: the nvup home
// (profile store) and the Neovim config directory (activation path). A Paths
// value is resolved once at startup and passed into every component, so tests
// can point the whole tool at a temp directory.
type Paths struct {
	// Home is the nvup data directory, default ~/.nvup.
	Home string

	// NvimDir is the Neovim configuration directory nvup redirects,
	// default $XDG_CONFIG_HOME/nvim or ~/.config/nvim.
	NvimDir string
}

// Resolve builds a Paths value. Explicit overrides (from flags) win over the
// NVUP_HOME / NVUP_NVIM_DIR environment variables, which win over defaults.
// Override values must be absolute and non-blank.
func Resolve(homeOverride, nvimOverride string) (*Paths, error) {
	home, err := resolveDir("nvup home", homeOverride, "NVUP_HOME", defaultHome)
	if err != nil {
		return nil, err
	}
	nvimDir, err := resolveDir("nvim dir", nvimOverride, "NVUP_NVIM_DIR", defaultNvimDir)
	if err != nil {
		return nil, err
	}
	return &Paths{Home: home, NvimDir: nvimDir}, nil
}

func resolveDir(label, override, envVar string, fallback func() (string, error)) (string, error) {
	candidate := override
	source := "flag"
	if candidate == "" {
		candidate = os.Getenv(envVar)
		source = envVar
	}
	if candidate != "" {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return "", fmt.Errorf("%s (%s) contains only whitespace", label, source)
		}
		if !filepath.IsAbs(candidate) {
			return "", fmt.Errorf("%s (%s) must be an absolute path: %s", label, source, candidate)
		}
		return filepath.Clean(candidate), nil
	}
	return fallback()
}

func defaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".nvup"), nil
}

func defaultNvimDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "nvim"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "nvim"), nil
}

// ProfilesDir returns the directory holding one subdirectory per profile.
func (p *Paths) ProfilesDir() string {
	return filepath.Join(p.Home, ProfilesDirName)
}

// ProfileDir returns the directory of the named profile. It does not check
// that the profile exists.
func (p *Paths) ProfileDir(name string) string {
	return filepath.Join(p.ProfilesDir(), name)
}

// InitMarker returns the path of the zero-byte initialization marker.
func (p *Paths) InitMarker() string {
	return filepath.Join(p.Home, InitMarkerName)
}

// LastUsePath returns the path of the last-use record file.
func (p *Paths) LastUsePath() string {
	return filepath.Join(p.Home, LastUseName)
}

// SettingsPath returns the path of the tool settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.Home, SettingsFileName)
}

// EventsLogPath returns the path of the operation journal.
func (p *Paths) EventsLogPath() string {
	return filepath.Join(p.Home, EventsLogName)
}
