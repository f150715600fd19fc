package domain

import "sync/atomic"

// Sequencer hands out entry numbers.
// Implementations must return strictly increasing values, each exactly once.
type Sequencer interface {
	Next() uint64
}

// Counter is a Sequencer backed by an atomic integer. It is safe for concurrent use.
type Counter struct {
	last atomic.Uint64
}

// NewCounter creates a Counter whose first Next call returns start.
// A start of 0 is treated as 1.
func NewCounter(start uint64) *Counter {
	if start == 0 {
		start = 1
	}
	c := &Counter{}
	c.last.Store(start - 1)
	return c
}

// Next returns the next number in the sequence.
func (c *Counter) Next() uint64 {
	return c.last.Add(1)
}

// Peek returns the number the next call to Next will return.
func (c *Counter) Peek() uint64 {
	return c.last.Load() + 1
}

var processCounter = NewCounter(1)

// ProcessCounter returns the counter shared by every record created without
// an explicit Sequencer.
func ProcessCounter() *Counter {
	return processCounter
}
