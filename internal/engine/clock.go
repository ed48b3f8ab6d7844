package engine

// Sequencer hands out verdict sequence numbers.
// Implemented by Clock (production) and testutil.DeterministicClock (tests).
type Sequencer interface {
	Next() int64
}

// Clock is the verifier's monotonic logical clock.
//
// Every submission, accepted or not, is stamped with the next value, so
// verdict order and proof store order never depend on wall time.
//
// Clock is not safe for concurrent use; the verifier is single-threaded.
type Clock struct {
	seq int64
}

// NewClock creates a clock starting at 0. The first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock positioned at start. The first Next returns
// start+1.
func NewClockAt(start int64) *Clock {
	return &Clock{seq: start}
}

// Next advances the clock and returns the new value.
func (c *Clock) Next() int64 {
	c.seq++
	return c.seq
}

// Current returns the last value handed out, or the start position.
func (c *Clock) Current() int64 {
	return c.seq
}
