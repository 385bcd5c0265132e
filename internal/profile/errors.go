// ABOUTME: Error kinds shared by the profile store, activation, and lifecycle code
// ABOUTME: Callers match these with errors.Is to pick exit behavior and messaging

package profile

import "errors"

var (
	// ErrNameInvalid reports a profile name that is empty or contains
	// one of the forbidden characters ('.', '/', space).
	ErrNameInvalid = errors.New("invalid profile name")

	// ErrAlreadyExists reports an attempt to create a profile whose name
	// is already taken.
	ErrAlreadyExists = errors.New("profile already exists")

	// ErrNotFound reports an operation on a profile that is not in the store.
	ErrNotFound = errors.New("profile not found")

	// ErrSourceMissing reports a copy whose source path is not a directory.
	ErrSourceMissing = errors.New("source directory missing")

	// ErrNotInitialized reports that the store needs an explicit `nvup init`.
	ErrNotInitialized = errors.New("not initialized (run: nvup init)")
)
