// ABOUTME: End-to-end specs driving the command tree against temp stores
// ABOUTME: Covers first-run setup, switching round trips, fork, rm, with, and the journal
package commands

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nvup/nvup/internal/launcher"
	"github.com/nvup/nvup/internal/profile"
)

var _ = Describe("first run", func() {
	var (
		home string
		nvim string
	)

	BeforeEach(func() {
		home, nvim, _ = useTempStore()
	})

	Context("with no existing config", func() {
		It("auto-initializes on the first command", func() {
			out, _, err := runCommand("status")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("last use: \n"))

			Expect(filepath.Join(home, "init_done")).To(BeAnExistingFile())
			Expect(filepath.Join(home, "profiles")).To(BeADirectory())
		})

		It("lists nothing on an empty store", func() {
			out, _, err := runCommand("ls")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
		})
	})

	Context("with an existing config directory", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(nvim, 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(nvim, "init.lua"), []byte("-- mine\n"), 0644)).To(Succeed())
		})

		It("refuses to run until init and explains why", func() {
			_, errOut, err := runCommand("status")
			Expect(err).To(MatchError(profile.ErrNotInitialized))
			Expect(errOut).To(ContainSubstring("nvup init"))

			// The config directory is untouched and the store not marked
			Expect(filepath.Join(nvim, "init.lua")).To(BeAnExistingFile())
			Expect(filepath.Join(home, "init_done")).NotTo(BeAnExistingFile())
		})

		It("migrates the config to profile main on explicit init", func() {
			_, _, err := runCommand("init")
			Expect(err).NotTo(HaveOccurred())

			migrated := filepath.Join(home, "profiles", "main", "init.lua")
			content, readErr := os.ReadFile(migrated)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("-- mine\n"))

			// Rename, not copy: the original location is gone until `use`
			_, statErr := os.Lstat(nvim)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
			Expect(filepath.Join(home, "init_done")).To(BeAnExistingFile())
		})

		It("is a no-op when run again", func() {
			_, _, err := runCommand("init")
			Expect(err).NotTo(HaveOccurred())
			_, _, err = runCommand("init")
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Join(home, "profiles", "main")).To(BeADirectory())
		})
	})
})

var _ = Describe("switching profiles", func() {
	var (
		home string
		nvim string
	)

	BeforeEach(func() {
		home, nvim, _ = useTempStore()
	})

	It("round-trips new --use, use, status, and ls", func() {
		_, _, err := runCommand("new", "first", "--use")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("last use: first\n"))

		_, _, err = runCommand("new", "second")
		Expect(err).NotTo(HaveOccurred())
		_, _, err = runCommand("use", "second")
		Expect(err).NotTo(HaveOccurred())

		out, _, err = runCommand("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("last use: second\n"))

		target, err := os.Readlink(nvim)
		Expect(err).NotTo(HaveOccurred())
		Expect(target).To(Equal(filepath.Join(home, "profiles", "second")))

		out, _, err = runCommand("ls")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("first"))
		Expect(out).To(ContainSubstring("second"))
	})

	It("forwards options after -- to ls", func() {
		_, _, err := runCommand("new", "only")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("ls", "--", "-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("only\n"))
	})

	It("rejects use of a profile that does not exist", func() {
		_, _, err := runCommand("use", "ghost")
		Expect(err).To(MatchError(profile.ErrNotFound))

		// Nothing was linked
		_, statErr := os.Lstat(nvim)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("creates the skeleton new promises", func() {
		_, _, err := runCommand("new", "bare")
		Expect(err).NotTo(HaveOccurred())

		entries, readErr := os.ReadDir(filepath.Join(home, "profiles", "bare"))
		Expect(readErr).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("init.lua"))

		info, statErr := entries[0].Info()
		Expect(statErr).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeZero())
	})

	It("rejects invalid profile names", func() {
		_, _, err := runCommand("new", "bad name")
		Expect(err).To(MatchError(profile.ErrNameInvalid))
	})
})

var _ = Describe("fork", func() {
	var (
		home string
		nvim string
	)

	BeforeEach(func() {
		home, nvim, _ = useTempStore()

		_, _, err := runCommand("new", "main", "--use")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.WriteFile(filepath.Join(home, "profiles", "main", "extra.lua"), []byte("return {}\n"), 0644)).To(Succeed())
	})

	It("copies the active config tree through the symlink", func() {
		_, _, err := runCommand("fork", "copy")
		Expect(err).NotTo(HaveOccurred())

		content, readErr := os.ReadFile(filepath.Join(home, "profiles", "copy", "extra.lua"))
		Expect(readErr).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("return {}\n"))

		// Activation unchanged without --use
		out, _, err := runCommand("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("last use: main\n"))
		Expect(os.Readlink(nvim)).To(Equal(filepath.Join(home, "profiles", "main")))
	})

	It("copies a stored profile with --from and activates with --use", func() {
		_, _, err := runCommand("fork", "--from", "main", "experiment", "--use")
		Expect(err).NotTo(HaveOccurred())

		Expect(filepath.Join(home, "profiles", "experiment", "extra.lua")).To(BeAnExistingFile())

		out, _, err := runCommand("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("last use: experiment\n"))
	})

	It("fails when --from names a missing profile", func() {
		_, _, err := runCommand("fork", "--from", "ghost", "copy")
		Expect(err).To(MatchError(profile.ErrNotFound))
		Expect(filepath.Join(home, "profiles", "copy")).NotTo(BeADirectory())
	})

	It("fails when nothing is active and no --from is given", func() {
		Expect(os.RemoveAll(nvim)).To(Succeed())

		_, _, err := runCommand("fork", "copy")
		Expect(err).To(MatchError(profile.ErrSourceMissing))
	})

	It("refuses to overwrite an existing profile", func() {
		_, _, err := runCommand("fork", "main")
		Expect(err).To(MatchError(profile.ErrAlreadyExists))
	})
})

var _ = Describe("rm", func() {
	var home string

	BeforeEach(func() {
		home, _, _ = useTempStore()

		_, _, err := runCommand("new", "doomed")
		Expect(err).NotTo(HaveOccurred())
	})

	It("deletes the profile directory", func() {
		_, _, err := runCommand("rm", "doomed")
		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Join(home, "profiles", "doomed")).NotTo(BeADirectory())
	})

	It("fails with not found for a missing profile", func() {
		_, _, err := runCommand("rm", "ghost")
		Expect(err).To(MatchError(profile.ErrNotFound))

		// The rest of the store is untouched
		Expect(filepath.Join(home, "profiles", "doomed")).To(BeADirectory())
	})
})

var _ = Describe("with", func() {
	var (
		home string
		nvim string
		rec  *launcher.Recorder
	)

	BeforeEach(func() {
		home, nvim, rec = useTempStore()

		_, _, err := runCommand("new", "main", "--use")
		Expect(err).NotTo(HaveOccurred())
		_, _, err = runCommand("new", "scratch")
		Expect(err).NotTo(HaveOccurred())
	})

	It("launches the editor with the profile override env", func() {
		_, _, err := runCommand("with", "scratch", "--", "--clean")
		Expect(err).NotTo(HaveOccurred())

		Expect(rec.Called).To(BeTrue())
		Expect(rec.Bin).To(Equal("nvim"))
		Expect(rec.Argv).To(Equal([]string{"nvim", "--clean"}))
		Expect(rec.EnvValue("XDG_CONFIG_HOME")).To(Equal(filepath.Join(home, "profiles")))
		Expect(rec.EnvValue("NVIM_APPNAME")).To(Equal("scratch"))
	})

	It("leaves activation and last use untouched", func() {
		_, _, err := runCommand("with", "scratch")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("last use: main\n"))
		Expect(os.Readlink(nvim)).To(Equal(filepath.Join(home, "profiles", "main")))
	})

	It("fails before exec for a missing profile", func() {
		_, _, err := runCommand("with", "ghost")
		Expect(err).To(MatchError(profile.ErrNotFound))
		Expect(rec.Called).To(BeFalse())
	})

	It("requires the profile name before --", func() {
		_, _, err := runCommand("with", "--", "--clean")
		Expect(err).To(HaveOccurred())
		Expect(rec.Called).To(BeFalse())
	})
})

var _ = Describe("doctor", func() {
	var (
		home string
		nvim string
	)

	BeforeEach(func() {
		home, nvim, _ = useTempStore()

		_, _, err := runCommand("new", "main", "--use")
		Expect(err).NotTo(HaveOccurred())

		// Pin the editor to a binary that is always on PATH so the
		// editor check cannot depend on nvim being installed.
		cfg := "version = 0\n\n[editor]\ncommand = \"sh\"\n"
		Expect(os.WriteFile(filepath.Join(home, "config.toml"), []byte(cfg), 0644)).To(Succeed())
	})

	It("reports a healthy store", func() {
		out, _, err := runCommand("doctor")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Active profile: main"))
		Expect(out).To(ContainSubstring("No issues found"))
	})

	It("flags a dangling symlink and a stale record after rm", func() {
		_, _, err := runCommand("rm", "main")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("doctor")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`Symlink points at removed profile "main"`))
		Expect(out).To(ContainSubstring(`Record names a profile that no longer exists: "main"`))
		Expect(out).To(ContainSubstring("2 issues found"))
	})

	It("flags stray files in the profiles directory", func() {
		Expect(os.WriteFile(filepath.Join(home, "profiles", "notes.txt"), []byte("x"), 0644)).To(Succeed())

		out, _, err := runCommand("doctor")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Stray file in profiles directory: notes.txt"))
	})

	It("flags a foreign symlink at the config path", func() {
		Expect(os.RemoveAll(nvim)).To(Succeed())
		Expect(os.Symlink(home, nvim)).To(Succeed())

		out, _, err := runCommand("doctor")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Symlink points outside the store"))
	})
})

var _ = Describe("journal", func() {
	BeforeEach(func() {
		useTempStore()
	})

	It("records every mutating command", func() {
		_, _, err := runCommand("new", "logged", "--use")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("events")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("use"))
		Expect(out).To(ContainSubstring("new"))
		Expect(out).To(ContainSubstring("logged"))
	})

	It("records failures with their error", func() {
		_, _, err := runCommand("use", "ghost")
		Expect(err).To(HaveOccurred())

		out, _, err := runCommand("events", "--op", "use")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("ghost"))
		Expect(out).To(ContainSubstring("not found"))
	})

	It("filters by profile name", func() {
		_, _, err := runCommand("new", "one")
		Expect(err).NotTo(HaveOccurred())
		_, _, err = runCommand("new", "two")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("events", "--profile", "one")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("one"))
		Expect(out).NotTo(ContainSubstring("two"))
	})

	It("skips recording with --no-journal", func() {
		_, _, err := runCommand("new", "quiet", "--no-journal")
		Expect(err).NotTo(HaveOccurred())

		out, _, err := runCommand("events")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("quiet"))
	})
})
