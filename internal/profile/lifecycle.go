// ABOUTME: One-time store initialization and the legacy config migration
// ABOUTME: Explicit three-state machine so each transition is testable on its own

package profile

import (
	"fmt"
	"os"

	"github.com/nvup/nvup/internal/config"
)

// LegacyProfileName is the profile a pre-existing nvim config directory
// becomes when it is migrated into the store.
const LegacyProfileName = "main"

// InitState describes where the store is in its one-time setup.
type InitState int

const (
	// StateUninitialized: marker absent, no legacy config directory.
	// Initialization is safe to run silently.
	StateUninitialized InitState = iota

	// StateAwaitingExplicitInit: marker absent but a real directory sits at
	// the nvim config path. Migration moves a directory the user may not
	// expect to move, so it requires an explicit `nvup init`.
	StateAwaitingExplicitInit

	// StateInitialized: marker present. Terminal; the marker never reverts.
	StateInitialized
)

func (s InitState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAwaitingExplicitInit:
		return "awaiting explicit init"
	case StateInitialized:
		return "initialized"
	default:
		return fmt.Sprintf("InitState(%d)", int(s))
	}
}

// Initializer performs idempotent one-time setup of the store.
type Initializer struct {
	paths *config.Paths
}

// NewInitializer returns an Initializer over the given paths.
func NewInitializer(paths *config.Paths) *Initializer {
	return &Initializer{paths: paths}
}

// State inspects the marker and the nvim config path and names the current
// lifecycle state.
func (i *Initializer) State() InitState {
	if _, err := os.Stat(i.paths.InitMarker()); err == nil {
		return StateInitialized
	}
	if i.legacyDirPresent() {
		return StateAwaitingExplicitInit
	}
	return StateUninitialized
}

// EnsureInitialized brings the store to the Initialized state: creates the
// home and profiles directories, ensures the last_use record and settings
// file exist, migrates a legacy config directory to the "main" profile by
// rename, and sets the marker. Safe to run repeatedly.
func (i *Initializer) EnsureInitialized() error {
	if err := os.MkdirAll(i.paths.ProfilesDir(), 0755); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}

	if _, err := os.Stat(i.paths.LastUsePath()); os.IsNotExist(err) {
		if err := os.WriteFile(i.paths.LastUsePath(), nil, 0644); err != nil {
			return fmt.Errorf("creating last use record: %w", err)
		}
	}

	if _, err := os.Stat(i.paths.SettingsPath()); os.IsNotExist(err) {
		if err := config.SaveSettings(i.paths.SettingsPath(), config.DefaultSettings()); err != nil {
			return err
		}
	}

	if i.State() == StateAwaitingExplicitInit {
		if err := i.migrateLegacyDir(); err != nil {
			return err
		}
	}

	if err := os.WriteFile(i.paths.InitMarker(), nil, 0644); err != nil {
		return fmt.Errorf("writing init marker: %w", err)
	}
	return nil
}

// IsInitialized reports whether the store is usable. With the marker absent
// and no legacy directory in the way, the empty state is already consistent,
// so initialization runs automatically and true is returned. A legacy
// directory blocks that auto-heal: the caller must run `nvup init`.
func (i *Initializer) IsInitialized() (bool, error) {
	switch i.State() {
	case StateInitialized:
		return true, nil
	case StateAwaitingExplicitInit:
		return false, nil
	default:
		if err := i.EnsureInitialized(); err != nil {
			return false, err
		}
		return true, nil
	}
}

// legacyDirPresent reports a real directory at the nvim config path. A
// symlink there is an activation, not legacy content.
func (i *Initializer) legacyDirPresent() bool {
	info, err := os.Lstat(i.paths.NvimDir)
	return err == nil && info.IsDir()
}

func (i *Initializer) migrateLegacyDir() error {
	dest := i.paths.ProfileDir(LegacyProfileName)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("cannot migrate %s: profile %q: %w",
			i.paths.NvimDir, LegacyProfileName, ErrAlreadyExists)
	}
	if err := os.Rename(i.paths.NvimDir, dest); err != nil {
		return fmt.Errorf("migrating %s to profile %q: %w", i.paths.NvimDir, LegacyProfileName, err)
	}
	return nil
}
