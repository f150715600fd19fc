// Package memory implements ports in process memory, for tests and embedding.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

// Writer implements ports.EntrySink by keeping each destination's lines in a map.
// It is safe for concurrent use.
type Writer struct {
	mu    sync.RWMutex
	lines map[string][]string
}

// NewWriter creates an empty in-memory writer.
func NewWriter() *Writer {
	return &Writer{lines: make(map[string][]string)}
}

// Save replaces the lines held for dest with the entries of src.
func (w *Writer) Save(ctx context.Context, src ports.EntrySource, dest string) error {
	if dest == "" {
		return domain.ErrEmptyDestination
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries := src.Entries()
	w.mu.Lock()
	w.lines[dest] = entries
	w.mu.Unlock()
	return nil
}

// Lines returns a copy of the lines saved to dest and whether dest was ever written.
func (w *Writer) Lines(dest string) ([]string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	l, ok := w.lines[dest]
	if !ok {
		return nil, false
	}
	cp := make([]string, len(l))
	copy(cp, l)
	return cp, true
}

// Destinations returns every destination written so far, sorted.
func (w *Writer) Destinations() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.lines))
	for d := range w.lines {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
