package dodge

// Clock is the fixed-step simulation clock. Each tick is treated as exactly
// Step milliseconds regardless of wall time.
type Clock struct {
	step int
	now  int
	tick uint64
}

// NewClock creates a clock with the given step in ms.
func NewClock(stepMS int) Clock {
	if stepMS <= 0 {
		stepMS = 16
	}
	return Clock{step: stepMS}
}

// Advance moves simulation time forward by one step.
func (c *Clock) Advance() {
	c.now += c.step
	c.tick++
}

// Now returns the simulation time in ms.
func (c Clock) Now() int { return c.now }

// Step returns the fixed step in ms.
func (c Clock) Step() int { return c.step }

// Tick returns the number of ticks advanced.
func (c Clock) Tick() uint64 { return c.tick }
