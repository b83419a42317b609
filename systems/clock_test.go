package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessClockElapsed(t *testing.T) {
	c := NewHeadlessClock(0.5, 0)
	for _, tt := range []struct {
		frame uint64
		want  float64
	}{
		{1, 0.5},
		{2, 1.0},
		{120, 60.0},
	} {
		elapsed, toggle := c.Tick(tt.frame)
		assert.Equal(t, tt.want, elapsed, "frame %d", tt.frame)
		assert.False(t, toggle, "toggling is disabled")
	}
}

func TestHeadlessClockToggleSchedule(t *testing.T) {
	// 0.25s frames, toggle every second: frames 4, 8 and 12
	c := NewHeadlessClock(0.25, 1)

	var toggled []uint64
	for f := uint64(1); f <= 13; f++ {
		if _, toggle := c.Tick(f); toggle {
			toggled = append(toggled, f)
		}
	}
	assert.Equal(t, []uint64{4, 8, 12}, toggled)
}

func TestHeadlessClockNegativePeriodNeverToggles(t *testing.T) {
	c := NewHeadlessClock(1, -3)
	for f := uint64(1); f <= 10; f++ {
		_, toggle := c.Tick(f)
		assert.False(t, toggle)
	}
}
