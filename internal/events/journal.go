// ABOUTME: Operation journal recording what nvup did to which profile
// ABOUTME: Journal failures never fail the wrapped operation.
package events

import "time"

// Writer writes and queries journaled operations.
type Writer interface {
	Write(op *Operation) error
	Query(filters Filters) ([]*Operation, error)
}

// Journal records profile operations around their execution.
type Journal struct {
	enabled bool
	writer  Writer
}

// NewJournal creates a journal. A disabled journal runs operations without
// recording anything.
func NewJournal(writer Writer, enabled bool) *Journal {
	return &Journal{enabled: enabled, writer: writer}
}

// IsEnabled returns whether operations are being recorded.
func (j *Journal) IsEnabled() bool {
	return j.enabled
}

// Record runs fn and journals the outcome under the given operation name.
// The operation's own error is returned; a write failure of the journal
// itself is dropped.
func (j *Journal) Record(op, profileName, source string, fn func() error) error {
	if !j.enabled {
		return fn()
	}

	err := fn()

	entry := &Operation{
		Timestamp: time.Now().UTC(),
		Op:        op,
		Profile:   profileName,
		Source:    source,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	_ = j.writer.Write(entry)

	return err
}

// Query returns journaled operations, most recent first.
func (j *Journal) Query(filters Filters) ([]*Operation, error) {
	return j.writer.Query(filters)
}
