package world

import "time"

// TimeStep is the fixed simulation step in seconds.
const TimeStep = 1.0 / 60.0

// Clock accumulates unpaused simulation time. All game timestamps (coyote,
// jump buffer, wall-jump dead time) are read from it.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration { return c.now }

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	c.now += time.Duration(dt * float64(time.Second))
}
