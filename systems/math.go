package systems

import (
	"math"
	"math/rand"
)

// float32 wrappers for the handful of math calls the formations need

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + float32(rng.Float64())*(hi-lo)
}
