package journal

import (
	"context"

	"github.com/bft-labs/journal/internal/adapters/fs"
	"github.com/bft-labs/journal/internal/adapters/memory"
	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

// Re-export types from internal packages for convenient access.
type (
	// Record is a named, append-only list of numbered entries.
	Record = domain.Record

	// Sequencer hands out entry numbers.
	Sequencer = domain.Sequencer

	// Counter is the atomic Sequencer implementation.
	Counter = domain.Counter

	// EntrySource is the read-only view of a record that writers receive.
	EntrySource = ports.EntrySource

	// Writer persists a record's entries to a destination.
	Writer = ports.EntrySink

	// TextWriter writes entries to a plain text file, one per line.
	TextWriter = fs.TextWriter

	// MemoryWriter keeps written entries in memory.
	MemoryWriter = memory.Writer
)

// Errors returned by this package. Check with errors.Is.
var (
	ErrWrite            = domain.ErrWrite
	ErrEmptyDestination = domain.ErrEmptyDestination
)

// NewRecord creates an empty record. Use WithSequencer to control numbering.
func NewRecord(name string, opts ...Option) *Record {
	o := applyOptions(opts)
	return domain.NewRecord(name, o.sequencer)
}

// NewCounter creates a counter whose first number is start (0 means 1).
func NewCounter(start uint64) *Counter {
	return domain.NewCounter(start)
}

// ProcessCounter returns the counter shared by records created without WithSequencer.
func ProcessCounter() *Counter {
	return domain.ProcessCounter()
}

// FormatEntry renders an entry line as "<n>: <text>".
func FormatEntry(n uint64, text string) string {
	return domain.FormatEntry(n, text)
}

// NewTextWriter creates a Writer for plain text files.
// Honors WithFileMode and WithLogger.
func NewTextWriter(opts ...Option) *TextWriter {
	o := applyOptions(opts)
	return fs.NewTextWriter(o.fileMode, o.logger)
}

// NewMemoryWriter creates an in-memory Writer.
func NewMemoryWriter() *MemoryWriter {
	return memory.NewWriter()
}

// Save writes src to the text file dest, replacing its contents.
// Write failures are returned, wrapping ErrWrite.
func Save(ctx context.Context, src EntrySource, dest string, opts ...Option) error {
	return NewTextWriter(opts...).Save(ctx, src, dest)
}
