package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
)

// FloatRig computes the slow bob and sway applied to the whole particle group.
type FloatRig struct {
	Speed             float32
	RotationIntensity float32
	FloatIntensity    float32

	offset float64 // Random time offset so runs do not start in phase
}

// NewFloatRig creates a rig with a random phase offset in [0, 10000).
func NewFloatRig(cfg config.FloatConfig, rng *rand.Rand) *FloatRig {
	return &FloatRig{
		Speed:             float32(cfg.Speed),
		RotationIntensity: float32(cfg.RotationIntensity),
		FloatIntensity:    float32(cfg.FloatIntensity),
		offset:            rng.Float64() * 10000,
	}
}

// Transform returns the group transform at elapsed seconds.
func (f *FloatRig) Transform(elapsed float32) components.Transform {
	// Kept in float64: the offset is large enough to eat float32 precision
	t := (f.offset + float64(elapsed)) / 4 * float64(f.Speed)
	s, c := float32(math.Sin(t)), float32(math.Cos(t))

	return components.Transform{
		Position: mgl32.Vec3{0, s / 10 * f.FloatIntensity, 0},
		Rotation: mgl32.Vec3{
			c / 8 * f.RotationIntensity,
			s / 8 * f.RotationIntensity,
			s / 20 * f.RotationIntensity,
		},
		Scale: 1,
	}
}

// Matrix returns the group model matrix at elapsed seconds.
func (f *FloatRig) Matrix(elapsed float32) mgl32.Mat4 {
	return f.Transform(elapsed).Matrix()
}
