package quiz

import "time"

const QuestionTime = 30 * time.Second

// Countdown is the per-question timer. It does not own a goroutine: whoever
// drives the engine calls Tick once per elapsed second.
type Countdown struct {
	remaining time.Duration
	armed     bool
}

func (c *Countdown) Arm(d time.Duration) {
	c.remaining = d
	c.armed = true
}

func (c *Countdown) Stop() {
	c.armed = false
}

func (c *Countdown) Armed() bool { return c.armed }

func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Tick removes one second and reports whether the countdown just expired.
// A stopped countdown ignores ticks.
func (c *Countdown) Tick() bool {
	if !c.armed {
		return false
	}
	c.remaining -= time.Second
	if c.remaining <= 0 {
		c.remaining = 0
		c.armed = false
		return true
	}
	return false
}
