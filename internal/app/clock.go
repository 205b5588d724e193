package app

import "time"

// maxFrameDelta caps dt after a stall (window drag, breakpoint) so the camera does not
// jump across the scene.
const maxFrameDelta = 250 * time.Millisecond

// frameClock measures frame deltas and frame rate.
type frameClock struct {
	last time.Time

	frames   int
	fpsSince time.Time
	fps      float64
}

func newFrameClock(now time.Time) *frameClock {
	return &frameClock{last: now, fpsSince: now}
}

// tick returns the seconds since the previous tick, capped at maxFrameDelta. The bool
// reports that a new frame rate sample is available.
func (c *frameClock) tick(now time.Time) (float32, bool) {
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	c.frames++
	sampled := false
	if elapsed := now.Sub(c.fpsSince); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.fpsSince = now
		sampled = true
	}
	return float32(delta.Seconds()), sampled
}

// FPS returns the last frame rate sample.
func (c *frameClock) FPS() float64 {
	return c.fps
}
