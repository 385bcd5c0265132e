// ABOUTME: Doctor command diagnosing store and activation consistency
// ABOUTME: Reports broken symlinks, stale records, and stray store entries
package commands

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nvup/nvup/internal/profile"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose common issues with the profile store",
	Long: `Run diagnostics over the store and the activation symlink.

Checks:
  - Store layout and the init marker
  - Activation symlink points at a stored profile
  - Last-use record names an existing profile
  - Profiles directory holds only valid profiles
  - Editor binary is on PATH

Issues are reported with a suggested fix; nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	issues := 0
	issues += checkStore(out)
	fmt.Fprintln(out)
	issues += checkActivation(out)
	fmt.Fprintln(out)
	issues += checkLastUse(out)
	fmt.Fprintln(out)
	issues += checkEditor(out)

	fmt.Fprintln(out)
	if issues == 0 {
		fmt.Fprintln(out, ui.Success(ui.SymbolSuccess)+" No issues found")
	} else {
		fmt.Fprintln(out, ui.Warning(ui.SymbolWarning)+fmt.Sprintf(" %d issue%s found", issues, pluralS(issues)))
	}
	return nil
}

func checkStore(out io.Writer) int {
	fmt.Fprintln(out, ui.RenderSection("Checking Store", -1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Home", paths.Home), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("State", profile.NewInitializer(paths).State().String()), 1))

	entries, err := os.ReadDir(paths.ProfilesDir())
	if err != nil {
		fmt.Fprintln(out, ui.Indent(ui.Error(ui.SymbolError)+" Cannot read profiles directory: "+err.Error(), 1))
		return 1
	}

	issues := 0
	valid := 0
	for _, entry := range entries {
		switch {
		case !entry.IsDir():
			fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+" Stray file in profiles directory: "+entry.Name(), 1))
			issues++
		case profile.ValidateName(entry.Name()) != nil:
			fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+fmt.Sprintf(" Invalid profile name on disk: %q", entry.Name()), 1))
			issues++
		default:
			valid++
		}
	}

	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Profiles", fmt.Sprintf("%d", valid)), 1))
	return issues
}

func checkActivation(out io.Writer) int {
	fmt.Fprintln(out, ui.RenderSection("Checking Activation", -1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Config path", paths.NvimDir), 1))

	info, err := os.Lstat(paths.NvimDir)
	if err != nil {
		fmt.Fprintln(out, ui.Indent(ui.Muted("Nothing activated (config path absent)"), 1))
		fmt.Fprintln(out, ui.Indent(ui.Muted(ui.SymbolArrow+" Activate a profile: nvup use <name>"), 1))
		return 0
	}

	if info.Mode()&os.ModeSymlink == 0 {
		fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+" Config path is a real directory, not an nvup symlink", 1))
		fmt.Fprintln(out, ui.Indent(ui.Muted(ui.SymbolArrow+" Bring it into the store: nvup fork <name>"), 1))
		return 1
	}

	target, err := os.Readlink(paths.NvimDir)
	if err != nil {
		fmt.Fprintln(out, ui.Indent(ui.Error(ui.SymbolError)+" Cannot read symlink: "+err.Error(), 1))
		return 1
	}

	if filepath.Dir(target) != paths.ProfilesDir() {
		fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+" Symlink points outside the store: "+target, 1))
		return 1
	}

	name := filepath.Base(target)
	if !store.Exists(name) {
		fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+fmt.Sprintf(" Symlink points at removed profile %q", name), 1))
		fmt.Fprintln(out, ui.Indent(ui.Muted(ui.SymbolArrow+" Repair: nvup use <name>"), 1))
		return 1
	}

	fmt.Fprintln(out, ui.Indent(ui.Success(ui.SymbolSuccess)+" Active profile: "+name, 1))
	return 0
}

func checkLastUse(out io.Writer) int {
	fmt.Fprintln(out, ui.RenderSection("Checking Last Use", -1))

	record, err := activation.CurrentRecord()
	if err != nil {
		fmt.Fprintln(out, ui.Indent(ui.Error(ui.SymbolError)+" Cannot read last-use record: "+err.Error(), 1))
		return 1
	}

	if record == "" {
		fmt.Fprintln(out, ui.Indent(ui.Muted("No profile activated yet"), 1))
		return 0
	}

	if !store.Exists(record) {
		fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+fmt.Sprintf(" Record names a profile that no longer exists: %q", record), 1))
		return 1
	}

	fmt.Fprintln(out, ui.Indent(ui.Success(ui.SymbolSuccess)+" Record: "+record, 1))
	return 0
}

func checkEditor(out io.Writer) int {
	fmt.Fprintln(out, ui.RenderSection("Checking Editor", -1))

	if _, err := exec.LookPath(settings.Editor.Command); err != nil {
		fmt.Fprintln(out, ui.Indent(ui.Warning(ui.SymbolWarning)+fmt.Sprintf(" %s is not on PATH; 'nvup with' will fail", settings.Editor.Command), 1))
		fmt.Fprintln(out, ui.Indent(ui.Muted(ui.SymbolArrow+" Set [editor] command in "+paths.SettingsPath()), 1))
		return 1
	}

	fmt.Fprintln(out, ui.Indent(ui.Success(ui.SymbolSuccess)+" "+settings.Editor.Command, 1))
	return 0
}

// pluralS returns "s" when n calls for a plural.
func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
