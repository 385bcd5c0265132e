// ABOUTME: Launches the editor against a chosen profile without switching activation
// ABOUTME: Process replacement sits behind an Execer so tests can record the call

package launcher

import (
	"fmt"
	"os"
	"strings"

	"github.com/nvup/nvup/internal/config"
	"github.com/nvup/nvup/internal/profile"
)

// Execer abstracts replacing the current process image. Production code uses
// ExecReplacer; tests inject a Recorder.
type Execer interface {
	// Exec transfers control to bin with the given argv and environment.
	// On success it never returns.
	Exec(bin string, argv, env []string) error
}

// Launcher starts the editor against a named profile. The profile directory
// is supplied through the environment (XDG_CONFIG_HOME pointing at the
// profiles dir plus NVIM_APPNAME selecting the profile), so the activation
// symlink and the last-use record stay untouched.
type Launcher struct {
	paths  *config.Paths
	store  *profile.Store
	editor config.EditorSettings
	execer Execer
}

// New returns a Launcher using the given editor settings and Execer.
func New(paths *config.Paths, store *profile.Store, editor config.EditorSettings, execer Execer) *Launcher {
	return &Launcher{paths: paths, store: store, editor: editor, execer: execer}
}

// Launch transfers control to the editor running the named profile,
// forwarding extraArgs verbatim after any configured editor arguments.
// It never returns on success.
func (l *Launcher) Launch(name string, extraArgs []string) error {
	if !l.store.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}

	bin := l.editor.Command
	argv := append([]string{bin}, l.editor.Args...)
	argv = append(argv, extraArgs...)

	env := OverrideEnv(os.Environ(), "XDG_CONFIG_HOME", l.paths.ProfilesDir())
	env = OverrideEnv(env, "NVIM_APPNAME", name)

	return l.execer.Exec(bin, argv, env)
}

// OverrideEnv returns env with key set to value, replacing every existing
// assignment of key so the override cannot be shadowed by a duplicate.
func OverrideEnv(env []string, key, value string) []string {
	prefix := key + "="
	result := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			result = append(result, kv)
		}
	}
	return append(result, prefix+value)
}
