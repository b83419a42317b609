package systems

// HeadlessClock derives elapsed time from the frame count and schedules
// automatic mode toggles for runs without a window.
type HeadlessClock struct {
	dt          float64
	toggleEvery float64 // 0 disables auto-toggling
	nextToggle  float64
}

// NewHeadlessClock creates a clock stepping dt seconds per frame. A
// non-positive toggleEvery never toggles.
func NewHeadlessClock(dt, toggleEvery float64) *HeadlessClock {
	if toggleEvery < 0 {
		toggleEvery = 0
	}
	return &HeadlessClock{dt: dt, toggleEvery: toggleEvery, nextToggle: toggleEvery}
}

// Tick returns the elapsed seconds at frame and whether the mode should
// flip before that frame runs. Frames must be passed in increasing order.
// At most one toggle is reported per call.
func (c *HeadlessClock) Tick(frame uint64) (elapsed float64, toggle bool) {
	elapsed = float64(frame) * c.dt
	if c.toggleEvery > 0 && elapsed >= c.nextToggle {
		c.nextToggle += c.toggleEvery
		toggle = true
	}
	return elapsed, toggle
}
