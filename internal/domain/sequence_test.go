package domain

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"pgregory.net/rapid"
)

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name  string
		start uint64
		want  uint64
	}{
		{name: "starts at one", start: 1, want: 1},
		{name: "zero treated as one", start: 0, want: 1},
		{name: "resumes later", start: 17, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(tt.start)
			if c.Peek() != tt.want {
				t.Errorf("Peek() = %d, want %d", c.Peek(), tt.want)
			}
			if got := c.Next(); got != tt.want {
				t.Errorf("Next() = %d, want %d", got, tt.want)
			}
			if c.Peek() != tt.want+1 {
				t.Errorf("Peek() after Next = %d, want %d", c.Peek(), tt.want+1)
			}
		})
	}
}

func TestCounter_ConcurrentNext(t *testing.T) {
	const workers, perWorker = 8, 500

	c := NewCounter(1)
	seen := make([]uint64, 0, workers*perWorker)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				local = append(local, c.Next())
			}
			mu.Lock()
			seen = append(seen, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	marks := make([]bool, workers*perWorker+1)
	for _, n := range seen {
		if n == 0 || n > workers*perWorker {
			t.Fatalf("Next() returned out of range number %d", n)
		}
		if marks[n] {
			t.Fatalf("Next() returned %d twice", n)
		}
		marks[n] = true
	}
	if c.Peek() != workers*perWorker+1 {
		t.Errorf("Peek() = %d, want %d", c.Peek(), workers*perWorker+1)
	}
}

// Numbers assigned across any number of records sharing a counter go up by one
// per call, whichever record receives the entry.
func TestSharedCounter_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Uint64Range(1, 1<<32).Draw(rt, "start")
		nRecords := rapid.IntRange(1, 5).Draw(rt, "records")
		calls := rapid.SliceOf(rapid.IntRange(0, nRecords-1)).Draw(rt, "calls")

		c := NewCounter(start)
		records := make([]*Record, nRecords)
		for i := range records {
			records[i] = NewRecord("r"+strconv.Itoa(i), c)
		}

		for i, idx := range calls {
			text := rapid.String().Draw(rt, "text")
			got := records[idx].AddEntry(text)
			if want := start + uint64(i); got != want {
				rt.Fatalf("call %d: number = %d, want %d", i, got, want)
			}
			entries := records[idx].Entries()
			last := entries[len(entries)-1]
			if !strings.HasPrefix(last, strconv.FormatUint(got, 10)+": ") {
				rt.Fatalf("entry %q lacks prefix %d", last, got)
			}
		}
	})
}
