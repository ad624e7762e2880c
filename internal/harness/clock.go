package harness

import "sync/atomic"

// Clock is a monotonic logical clock stamping trace events.
//
// Every run starts a fresh Clock so that identical scenarios produce
// identical sequence numbers. Safe for concurrent use.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0. The first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next increments and returns the sequence number.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
