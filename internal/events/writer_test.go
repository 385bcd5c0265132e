// ABOUTME: Tests for the JSONL operation writer that persists the journal
// ABOUTME: to disk in a queryable format.
package events_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nvup/nvup/internal/events"
)

var _ = Describe("JSONLWriter", func() {
	var (
		writer  *events.JSONLWriter
		tempDir string
		logPath string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "writer-test-*")
		Expect(err).NotTo(HaveOccurred())

		logPath = filepath.Join(tempDir, "events.log")
		writer, err = events.NewJSONLWriter(logPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("Write", func() {
		It("appends operations to the log file", func() {
			Expect(writer.Write(&events.Operation{
				Timestamp: time.Now(),
				Op:        "new",
				Profile:   "scratch",
			})).To(Succeed())
			Expect(writer.Write(&events.Operation{
				Timestamp: time.Now(),
				Op:        "use",
				Profile:   "scratch",
			})).To(Succeed())

			ops, err := writer.Query(events.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(2))
		})

		It("creates parent directories if needed", func() {
			deepPath := filepath.Join(tempDir, "nested", "dir", "events.log")
			deepWriter, err := events.NewJSONLWriter(deepPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(deepWriter.Write(&events.Operation{
				Timestamp: time.Now(),
				Op:        "init",
			})).To(Succeed())

			_, err = os.Stat(deepPath)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Query", func() {
		BeforeEach(func() {
			writer.Write(&events.Operation{
				Timestamp: time.Now().Add(-2 * time.Hour),
				Op:        "new",
				Profile:   "work",
			})
			writer.Write(&events.Operation{
				Timestamp: time.Now().Add(-1 * time.Hour),
				Op:        "fork",
				Profile:   "experiment",
				Source:    "work",
			})
			writer.Write(&events.Operation{
				Timestamp: time.Now(),
				Op:        "use",
				Profile:   "work",
			})
		})

		It("returns all operations when no filters", func() {
			ops, err := writer.Query(events.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(3))
		})

		It("filters by operation", func() {
			ops, err := writer.Query(events.Filters{Op: "fork"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(1))
			Expect(ops[0].Source).To(Equal("work"))
		})

		It("filters by profile", func() {
			ops, err := writer.Query(events.Filters{Profile: "work"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(2))
		})

		It("filters by time", func() {
			ops, err := writer.Query(events.Filters{Since: time.Now().Add(-90 * time.Minute)})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(2))
		})

		It("limits results keeping the most recent", func() {
			ops, err := writer.Query(events.Filters{Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(1))
			Expect(ops[0].Op).To(Equal("use"))
		})

		It("returns operations in reverse chronological order", func() {
			ops, err := writer.Query(events.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops[0].Timestamp.After(ops[1].Timestamp)).To(BeTrue())
			Expect(ops[1].Timestamp.After(ops[2].Timestamp)).To(BeTrue())
		})

		It("skips malformed lines", func() {
			f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0600)
			Expect(err).NotTo(HaveOccurred())
			f.WriteString("{invalid json}\n")
			f.WriteString("not json at all\n")
			f.Close()

			ops, err := writer.Query(events.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(3))
		})

		It("returns an empty slice for a missing log file", func() {
			emptyWriter, err := events.NewJSONLWriter(filepath.Join(tempDir, "none.log"))
			Expect(err).NotTo(HaveOccurred())

			ops, err := emptyWriter.Query(events.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(BeEmpty())
		})
	})
})
