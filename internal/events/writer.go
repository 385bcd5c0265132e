// ABOUTME: JSONL writer that persists profile operations to disk
// ABOUTME: in a queryable format for audit trails and troubleshooting.
package events

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Operation is a single journaled profile operation.
type Operation struct {
	Timestamp time.Time `json:"timestamp"`
	Op        string    `json:"op"`                // "init", "use", "fork", "new", "rm"
	Profile   string    `json:"profile,omitempty"` // profile the operation targeted
	Source    string    `json:"source,omitempty"`  // copy source for fork
	Error     string    `json:"error,omitempty"`   // non-empty when the operation failed
}

// Filters narrow a journal query.
type Filters struct {
	Op      string
	Profile string
	Since   time.Time
	Limit   int
}

// JSONLWriter appends operations to a JSONL (JSON Lines) file.
type JSONLWriter struct {
	logPath string
	mu      sync.Mutex
}

// NewJSONLWriter creates a writer for the given log path.
func NewJSONLWriter(logPath string) (*JSONLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}
	return &JSONLWriter{logPath: logPath}, nil
}

// Write appends an operation to the log file.
func (w *JSONLWriter) Write(op *Operation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(op)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// Query reads operations from the log file, applies filters, and returns
// them most recent first.
func (w *JSONLWriter) Query(filters Filters) ([]*Operation, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := os.Stat(w.logPath); os.IsNotExist(err) {
		return []*Operation{}, nil
	}

	f, err := os.Open(w.logPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ops []*Operation
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var op Operation
		if err := json.Unmarshal(scanner.Bytes(), &op); err != nil {
			// Skip malformed lines
			continue
		}
		if !matchesFilters(&op, filters) {
			continue
		}
		ops = append(ops, &op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Timestamp.After(ops[j].Timestamp)
	})

	if filters.Limit > 0 && len(ops) > filters.Limit {
		ops = ops[:filters.Limit]
	}
	return ops, nil
}

func matchesFilters(op *Operation, filters Filters) bool {
	if filters.Op != "" && !strings.Contains(op.Op, filters.Op) {
		return false
	}
	if filters.Profile != "" && op.Profile != filters.Profile {
		return false
	}
	if !filters.Since.IsZero() && op.Timestamp.Before(filters.Since) {
		return false
	}
	return true
}
