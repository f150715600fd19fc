package domain

import "strconv"

// Record is a named, append-only list of numbered entries.
// A Record is not safe for concurrent mutation; its Sequencer may be.
type Record struct {
	name    string
	seq     Sequencer
	entries []string
}

// NewRecord creates an empty record. A nil seq numbers entries from ProcessCounter.
func NewRecord(name string, seq Sequencer) *Record {
	if seq == nil {
		seq = processCounter
	}
	return &Record{
		name:    name,
		seq:     seq,
		entries: make([]string, 0),
	}
}

// RestoreRecord rebuilds a record from entries that were already numbered,
// e.g. when loading a Snapshot. New entries continue from seq.
func RestoreRecord(name string, entries []string, seq Sequencer) *Record {
	r := NewRecord(name, seq)
	r.entries = append(r.entries, entries...)
	return r
}

// Name returns the record's display label.
func (r *Record) Name() string {
	return r.name
}

// AddEntry numbers text and appends it. It returns the number assigned.
func (r *Record) AddEntry(text string) uint64 {
	n := r.seq.Next()
	r.entries = append(r.entries, FormatEntry(n, text))
	return n
}

// Entries returns a copy of the formatted entries in insertion order.
func (r *Record) Entries() []string {
	cp := make([]string, len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.entries)
}

// FormatEntry renders an entry line as "<n>: <text>".
func FormatEntry(n uint64, text string) string {
	return strconv.FormatUint(n, 10) + ": " + text
}
