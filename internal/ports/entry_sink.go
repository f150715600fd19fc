package ports

import "context"

// EntrySource is the read-only view of a record that sinks receive.
// *domain.Record satisfies this interface.
type EntrySource interface {
	// Name returns the record's display label.
	Name() string

	// Entries returns the formatted entries in insertion order.
	Entries() []string
}

// EntrySink persists a record's entries.
type EntrySink interface {
	// Save writes every entry of src to dest, replacing whatever dest held before.
	// Returns an error wrapping domain.ErrWrite when dest cannot be written.
	Save(ctx context.Context, src EntrySource, dest string) error
}
