package testutil

// DeterministicClock is a resettable logical clock for tests.
//
// Unlike engine.Clock, it can be rewound with Reset so one scenario can run
// several times with identical seq values. Implements engine.Sequencer.
type DeterministicClock struct {
	seq int64
}

// NewDeterministicClock creates a clock starting at 0.
// The first call to Next returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next increments and returns the sequence number.
func (c *DeterministicClock) Next() int64 {
	c.seq++
	return c.seq
}

// Current returns the last value handed out.
func (c *DeterministicClock) Current() int64 {
	return c.seq
}

// Reset rewinds the clock to 0.
func (c *DeterministicClock) Reset() {
	c.seq = 0
}
