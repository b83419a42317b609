package systems

import (
	"sync/atomic"

	"github.com/pthm-cable/arix/components"
)

// ModeController holds the current formation mode. Reads and toggles are
// atomic so a toggle from an input goroutine can never tear a frame's read.
type ModeController struct {
	mode    atomic.Uint32
	toggles atomic.Uint64
}

// NewModeController starts in Assembled mode.
func NewModeController() *ModeController {
	mc := &ModeController{}
	mc.mode.Store(uint32(components.Assembled))
	return mc
}

// Mode returns the current mode.
func (mc *ModeController) Mode() components.Mode {
	return components.Mode(mc.mode.Load())
}

// Toggle flips Assembled and Scattered and returns the new mode.
func (mc *ModeController) Toggle() components.Mode {
	for {
		old := mc.mode.Load()
		next := uint32(components.Mode(old).Toggled())
		if mc.mode.CompareAndSwap(old, next) {
			mc.toggles.Add(1)
			return components.Mode(next)
		}
	}
}

// Toggles returns how many times the mode was flipped.
func (mc *ModeController) Toggles() uint64 {
	return mc.toggles.Load()
}

// AutoRotate reports whether the camera should orbit on its own.
func (mc *ModeController) AutoRotate() bool {
	return mc.Mode() == components.Assembled
}
