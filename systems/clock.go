package systems

// maxStepsPerUpdate bounds catch-up after a long stall
const maxStepsPerUpdate = 4

// Clock converts variable frame deltas into fixed simulation steps.
type Clock struct {
	step        float64
	accumulated float64
	ticks       uint64
}

// NewClock creates a clock firing every step seconds
func NewClock(step float64) *Clock {
	return &Clock{step: step}
}

// Advance adds dt seconds and returns how many steps are now due
func (c *Clock) Advance(dt float64) int {
	if c.step <= 0 {
		return 0
	}
	c.accumulated += dt

	steps := 0
	for c.accumulated >= c.step {
		c.accumulated -= c.step
		steps++
	}
	if steps > maxStepsPerUpdate {
		steps = maxStepsPerUpdate
	}
	c.ticks += uint64(steps)
	return steps
}

// Ticks returns the number of steps fired so far
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Reset drops accumulated time and the tick count
func (c *Clock) Reset() {
	c.accumulated = 0
	c.ticks = 0
}
