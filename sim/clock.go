package sim

import "github.com/milk9111/ledgeswing/common"

const defaultMaxSubsteps = 5

// Clock turns elapsed wall-clock time into tick timesteps.
//
// With Step == 0 every call yields exactly one tick of the elapsed time
// (variable timestep, framerate-dependent). With Step > 0 elapsed time is
// accumulated and spent in constant Step ticks, at most MaxSubsteps per call;
// anything beyond that is dropped rather than carried into the next frame.
type Clock struct {
	Step        float32
	MaxSubsteps int

	acc float32
}

// Fixed reports whether the clock runs in fixed-timestep mode.
func (c *Clock) Fixed() bool {
	return c != nil && c.Step > 0
}

// Advance calls tick once per timestep covered by elapsed seconds and returns
// the number of ticks run.
func (c *Clock) Advance(elapsed float32, tick func(dt float32)) int {
	if tick == nil {
		return 0
	}
	if !common.Finite(elapsed) || elapsed < 0 {
		elapsed = 0
	}
	if !c.Fixed() {
		tick(elapsed)
		return 1
	}

	limit := c.MaxSubsteps
	if limit <= 0 {
		limit = defaultMaxSubsteps
	}

	c.acc += elapsed
	n := 0
	for c.acc >= c.Step && n < limit {
		tick(c.Step)
		c.acc -= c.Step
		n++
	}
	if n == limit && c.acc >= c.Step {
		c.acc = 0
	}
	return n
}

// Pending returns the accumulated time not yet spent on a tick.
func (c *Clock) Pending() float32 {
	if c == nil {
		return 0
	}
	return c.acc
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	if c != nil {
		c.acc = 0
	}
}
