package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/config"
)

// TreeShape describes the spiral cone particles assemble into.
type TreeShape struct {
	Height      float32
	Radius      float32 // Radius at the base
	GoldenAngle float32
}

// TreeShapeFromConfig builds a TreeShape from the scene config.
func TreeShapeFromConfig(cfg *config.Config) TreeShape {
	return TreeShape{
		Height:      cfg.Derived.TreeHeight32,
		Radius:      cfg.Derived.TreeRadius32,
		GoldenAngle: cfg.Derived.GoldenAngle32,
	}
}

// TreeRadiusAt returns the spiral radius at height y: the full radius at the
// base (y = -H/2) shrinking linearly to zero at the top (y = H/2).
func TreeRadiusAt(y float32, shape TreeShape) float32 {
	return shape.Radius * (1 - (y+shape.Height/2)/shape.Height)
}

// TreeHeightAt returns the y coordinate of spiral point index out of total.
func TreeHeightAt(index, total int, shape TreeShape) float32 {
	return float32(index)/float32(total)*shape.Height - shape.Height/2
}

// TreePosition places particle index of total on the vertical golden-angle
// spiral, jittered on x and z by up to noise/2 either way.
// Called once per particle when the dataset is built.
func TreePosition(index, total int, shape TreeShape, noise float32, rng *rand.Rand) mgl32.Vec3 {
	y := TreeHeightAt(index, total, shape)
	r := TreeRadiusAt(y, shape)
	angle := float32(index) * shape.GoldenAngle

	jx := (float32(rng.Float64()) - 0.5) * noise
	jz := (float32(rng.Float64()) - 0.5) * noise

	return mgl32.Vec3{
		cosf(angle)*r + jx,
		y,
		sinf(angle)*r + jz,
	}
}

// ScatterPosition returns a point drawn uniformly from the volume of a sphere
// of the given radius centred on the origin. The cube root on the radius
// keeps shells of equal volume equally populated.
func ScatterPosition(radius float32, rng *rand.Rand) mgl32.Vec3 {
	u := rng.Float64()
	v := rng.Float64()
	theta := 2 * math.Pi * u
	phi := math.Acos(2*v - 1)
	r := math.Cbrt(rng.Float64()) * float64(radius)

	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * sinPhi * math.Cos(theta)),
		float32(r * sinPhi * math.Sin(theta)),
		float32(r * math.Cos(phi)),
	}
}
