package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Snapshot is the persisted form of a Record.
// JSON uses snake_case field names, matching the other files the tool writes.
type Snapshot struct {
	// Name is the record's display label
	Name string `json:"name"`

	// Entries holds the already formatted entry lines
	Entries []string `json:"entries"`

	// NextSequence is the number the next appended entry receives
	NextSequence uint64 `json:"next_sequence"`

	// SavedAt is the time the snapshot was taken
	SavedAt time.Time `json:"saved_at"`
}

// NewSnapshot captures r together with the next number its sequence will issue.
func NewSnapshot(r *Record, next uint64) Snapshot {
	return Snapshot{
		Name:         r.Name(),
		Entries:      r.Entries(),
		NextSequence: next,
		SavedAt:      time.Now().UTC(),
	}
}

// IsEmpty returns true if nothing has been saved yet.
func (s Snapshot) IsEmpty() bool {
	return s.Name == ""
}

// Validate checks that entry numbers strictly increase and that NextSequence
// is above the last of them. Errors wrap ErrCorruptSnapshot.
func (s Snapshot) Validate() error {
	if s.IsEmpty() {
		if len(s.Entries) > 0 {
			return fmt.Errorf("%w: entries without a name", ErrCorruptSnapshot)
		}
		return nil
	}

	var last uint64
	for i, e := range s.Entries {
		n, err := ParseEntrySequence(e)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrCorruptSnapshot, i, err)
		}
		if n <= last {
			return fmt.Errorf("%w: entry %d numbered %d after %d", ErrCorruptSnapshot, i, n, last)
		}
		last = n
	}
	if s.NextSequence <= last {
		return fmt.Errorf("%w: next_sequence %d not above last entry %d", ErrCorruptSnapshot, s.NextSequence, last)
	}
	return nil
}

// Restore rebuilds the record and a counter positioned after its last entry.
// Call Validate first; Restore trusts the snapshot.
func (s Snapshot) Restore() (*Record, *Counter) {
	c := NewCounter(s.NextSequence)
	return RestoreRecord(s.Name, s.Entries, c), c
}

// ParseEntrySequence returns the number of an entry formatted by FormatEntry.
func ParseEntrySequence(entry string) (uint64, error) {
	num, _, ok := strings.Cut(entry, ": ")
	if !ok {
		return 0, fmt.Errorf("missing sequence prefix in %q", entry)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("bad sequence %q", num)
	}
	return n, nil
}
