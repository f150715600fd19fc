package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestSnapshot_IsEmpty(t *testing.T) {
	if !(Snapshot{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero snapshot")
	}
	if (Snapshot{Name: "Dear Diary"}).IsEmpty() {
		t.Error("IsEmpty() = true for named snapshot")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c := NewCounter(1)
	r := NewRecord("Dear Diary", c)
	r.AddEntry("I ate a bug")
	r.AddEntry("I cried today")

	snap := NewSnapshot(r, c.Peek())
	if snap.NextSequence != 3 {
		t.Fatalf("NextSequence = %d, want 3", snap.NextSequence)
	}
	if snap.SavedAt.IsZero() {
		t.Error("SavedAt not set")
	}

	restored, rc := snap.Restore()
	restored.AddEntry("I laughed")

	want := []string{"1: I ate a bug", "2: I cried today", "3: I laughed"}
	if !reflect.DeepEqual(restored.Entries(), want) {
		t.Errorf("Entries() = %q, want %q", restored.Entries(), want)
	}
	if rc.Peek() != 4 {
		t.Errorf("Peek() = %d, want 4", rc.Peek())
	}
	if restored.Name() != "Dear Diary" {
		t.Errorf("Name() = %q", restored.Name())
	}
}

func TestSnapshot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{
			name: "empty",
			snap: Snapshot{},
		},
		{
			name: "consistent",
			snap: Snapshot{Name: "Dear Diary", Entries: []string{"1: a", "2: b"}, NextSequence: 3},
		},
		{
			name: "gap in shared numbering",
			snap: Snapshot{Name: "Dear Diary", Entries: []string{"1: a", "5: b"}, NextSequence: 9},
		},
		{
			name: "named without entries",
			snap: Snapshot{Name: "Dear Diary", NextSequence: 1},
		},
		{
			name:    "zero next_sequence",
			snap:    Snapshot{Name: "Dear Diary", Entries: []string{"1: a", "2: b"}, NextSequence: 0},
			wantErr: true,
		},
		{
			name:    "stale next_sequence",
			snap:    Snapshot{Name: "Dear Diary", Entries: []string{"1: a", "2: b"}, NextSequence: 2},
			wantErr: true,
		},
		{
			name:    "numbers not increasing",
			snap:    Snapshot{Name: "Dear Diary", Entries: []string{"2: a", "2: b"}, NextSequence: 3},
			wantErr: true,
		},
		{
			name:    "missing prefix",
			snap:    Snapshot{Name: "Dear Diary", Entries: []string{"a"}, NextSequence: 2},
			wantErr: true,
		},
		{
			name:    "entries without name",
			snap:    Snapshot{Entries: []string{"1: a"}, NextSequence: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrCorruptSnapshot) {
				t.Errorf("Validate() error = %v, want ErrCorruptSnapshot", err)
			}
		})
	}
}

func TestParseEntrySequence(t *testing.T) {
	tests := []struct {
		entry   string
		want    uint64
		wantErr bool
	}{
		{entry: "1: I ate a bug", want: 1},
		{entry: "42: ", want: 42},
		{entry: "7: a: b", want: 7},
		{entry: "0: zero", wantErr: true},
		{entry: "x: nope", wantErr: true},
		{entry: "no prefix", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, err := ParseEntrySequence(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEntrySequence() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEntrySequence() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Every snapshot taken from a live record validates.
func TestNewSnapshot_AlwaysValid(t *testing.T) {
	c := NewCounter(5)
	other := NewRecord("Other", c)
	r := NewRecord("Dear Diary", c)
	r.AddEntry("a")
	other.AddEntry("b")
	r.AddEntry("c")

	if err := NewSnapshot(r, c.Peek()).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
