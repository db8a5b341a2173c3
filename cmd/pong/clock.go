package main

import "time"

// frameClock mede o dt real entre dois ticks. O primeiro tick usa
// fallback e nenhum dt passa de max (janela arrastada, debugger...).
type frameClock struct {
	last     time.Time
	fallback float64
	max      float64
}

func (c *frameClock) tick(now time.Time) float64 {
	dt := c.fallback
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now

	if c.max > 0 && dt > c.max {
		dt = c.max
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}
