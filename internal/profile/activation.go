// ABOUTME: Activation manager owning the nvim config symlink and the last-use record
// ABOUTME: Switching replaces the symlink first, then overwrites last_use

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nvup/nvup/internal/config"
)

// Activation owns the active-profile symlink at the nvim config path and
// the last_use record next to the store.
type Activation struct {
	paths *config.Paths
	store *Store
}

// NewActivation returns an Activation over the given paths and store.
func NewActivation(paths *config.Paths, store *Store) *Activation {
	return &Activation{paths: paths, store: store}
}

// Activate points the nvim config path at the named profile and records the
// name in last_use. Whatever currently occupies the config path (file,
// directory, or symlink) is removed first. The symlink swap and the record
// write are two separate filesystem writes; a crash between them leaves
// last_use out of step with the symlink, which status tolerates. Idempotent.
func (a *Activation) Activate(name string) error {
	if !a.store.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}

	link := a.paths.NvimDir
	if err := os.RemoveAll(link); err != nil {
		return fmt.Errorf("clearing %s: %w", link, err)
	}
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(link), err)
	}
	if err := os.Symlink(a.paths.ProfileDir(name), link); err != nil {
		return fmt.Errorf("linking %s: %w", link, err)
	}

	if err := a.writeLastUse(name); err != nil {
		return err
	}
	return nil
}

// CurrentRecord returns the raw last_use content with the trailing newline
// trimmed. The record is informational: it may name a profile that no
// longer exists and is never re-validated.
func (a *Activation) CurrentRecord() (string, error) {
	data, err := os.ReadFile(a.paths.LastUsePath())
	if err != nil {
		return "", fmt.Errorf("reading last use record: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Current resolves the activation symlink and reports which stored profile
// it targets. ok is false when the config path is absent, not a symlink,
// points outside the store, or points at a profile that no longer exists.
func (a *Activation) Current() (name string, ok bool) {
	target, err := os.Readlink(a.paths.NvimDir)
	if err != nil {
		return "", false
	}
	if filepath.Dir(target) != a.paths.ProfilesDir() {
		return "", false
	}
	name = filepath.Base(target)
	if !a.store.Exists(name) {
		return "", false
	}
	return name, true
}

func (a *Activation) writeLastUse(name string) error {
	if err := os.WriteFile(a.paths.LastUsePath(), []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("recording last use: %w", err)
	}
	return nil
}
