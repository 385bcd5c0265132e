// ABOUTME: Profile store owning the directory of profiles under the nvup home
// ABOUTME: Create, copy, remove, list, and existence-check profile directories

package profile

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nvup/nvup/internal/config"
)

// InitFileName is the single empty file placed in a freshly created profile.
// Neovim treats a config directory with an init.lua as a complete config.
const InitFileName = "init.lua"

// Store performs CRUD over profile directories rooted at the profiles dir.
type Store struct {
	paths *config.Paths
}

// NewStore returns a Store operating on the given paths.
func NewStore(paths *config.Paths) *Store {
	return &Store{paths: paths}
}

// Dir returns the directory a profile of this name would occupy. It does not
// check that the profile exists.
func (s *Store) Dir(name string) string {
	return s.paths.ProfileDir(name)
}

// Exists reports whether the named profile is in the store. Invalid names
// are reported as absent rather than as errors.
func (s *Store) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	info, err := os.Stat(s.paths.ProfileDir(name))
	return err == nil && info.IsDir()
}

// List prints the profiles directory with the system ls, forwarding
// extraArgs verbatim so callers can use any display options ls supports.
func (s *Store) List(extraArgs []string, stdout, stderr io.Writer) error {
	args := append(append([]string{}, extraArgs...), s.paths.ProfilesDir())
	cmd := exec.Command("ls", args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}
	return nil
}

// CreateEmpty creates a new profile holding a single empty init file.
func (s *Store) CreateEmpty(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if s.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrAlreadyExists)
	}

	dir := s.paths.ProfileDir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating profile %q: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, InitFileName), nil, 0644); err != nil {
		return fmt.Errorf("creating %s for profile %q: %w", InitFileName, name, err)
	}
	return nil
}

// CreateCopy creates a new profile as a recursive, symlink-dereferencing
// copy of sourcePath. An interrupted copy is not rolled back.
func (s *Store) CreateCopy(name, sourcePath string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if s.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrAlreadyExists)
	}
	info, err := os.Stat(sourcePath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s: %w", sourcePath, ErrSourceMissing)
	}

	if err := copyTree(sourcePath, s.paths.ProfileDir(name)); err != nil {
		return fmt.Errorf("copying %s to profile %q: %w", sourcePath, name, err)
	}
	return nil
}

// Remove recursively deletes the named profile. Irreversible; no trash.
func (s *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !s.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	if err := os.RemoveAll(s.paths.ProfileDir(name)); err != nil {
		return fmt.Errorf("removing profile %q: %w", name, err)
	}
	return nil
}
