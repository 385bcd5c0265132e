// ABOUTME: Recording Execer used by tests instead of real process replacement

package launcher

// Recorder captures the exec call for assertions. Unlike the real Execer it
// returns, so test code continues after a "launch".
type Recorder struct {
	Called bool
	Bin    string
	Argv   []string
	Env    []string
}

func (r *Recorder) Exec(bin string, argv, env []string) error {
	r.Called = true
	r.Bin = bin
	r.Argv = argv
	r.Env = env
	return nil
}

// EnvValue returns the recorded value of key, or "" if it was not set.
func (r *Recorder) EnvValue(key string) string {
	prefix := key + "="
	for _, kv := range r.Env {
		if len(kv) >= len(prefix) && kv[:len(prefix)] == prefix {
			return kv[len(prefix):]
		}
	}
	return ""
}
