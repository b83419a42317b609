package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

var defaultShape = TreeShape{Height: 12, Radius: 4.5, GoldenAngle: 2.39996}

func TestTreeRadiusAt(t *testing.T) {
	tests := []struct {
		name string
		y    float32
		want float32
	}{
		{"base", -6, 4.5},
		{"middle", 0, 2.25},
		{"top", 6, 0},
		{"quarter", -3, 3.375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TreeRadiusAt(tt.y, defaultShape)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestTreePositionBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const total = 1500
	const noise = 0.5
	// Jitter is independent on x and z, so the radial error is at most noise/2*sqrt(2)
	radialSlack := float64(noise/2)*math.Sqrt2 + 1e-4

	for i := 0; i < total; i++ {
		p := TreePosition(i, total, defaultShape, noise, rng)

		y := p.Y()
		require.GreaterOrEqual(t, y, float32(-6), "index %d", i)
		require.LessOrEqual(t, y, float32(6), "index %d", i)

		r := TreeRadiusAt(y, defaultShape)
		require.GreaterOrEqual(t, r, float32(0), "index %d", i)
		require.LessOrEqual(t, r, float32(4.5), "index %d", i)

		horizontal := math.Hypot(float64(p.X()), float64(p.Z()))
		require.InDelta(t, float64(r), horizontal, radialSlack, "index %d", i)
	}
}

func TestTreePositionFirstOfFour(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := TreePosition(0, 4, defaultShape, 0.5, rng)

	assert.Equal(t, float32(-6), p.Y())
	assert.Equal(t, float32(4.5), TreeRadiusAt(p.Y(), defaultShape))
	// Angle 0: base point (4.5, -6, 0) plus at most 0.25 jitter on x and z
	assert.InDelta(t, 4.5, p.X(), 0.25)
	assert.InDelta(t, 0, p.Z(), 0.25)
}

func TestTreePositionWithoutNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const total = 10
	for i := 0; i < total; i++ {
		p := TreePosition(i, total, defaultShape, 0, rng)
		y := TreeHeightAt(i, total, defaultShape)
		r := float64(TreeRadiusAt(y, defaultShape))
		angle := float64(i) * 2.39996

		assert.InDelta(t, r*math.Cos(angle), p.X(), 1e-4)
		assert.InDelta(t, r*math.Sin(angle), p.Z(), 1e-4)
		assert.Equal(t, y, p.Y())
	}
}

func TestScatterPositionInsideSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		p := ScatterPosition(15, rng)
		require.LessOrEqual(t, p.Len(), float32(15.0001))
	}
}

func TestScatterPositionUniformVolume(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 40000
	const radius = 15.0

	inner := 0
	fill := make([]float64, n) // (r/R)^3 is uniform on [0,1] for a uniform ball
	cosPolar := make([]float64, n)
	for i := 0; i < n; i++ {
		p := ScatterPosition(radius, rng)
		d := float64(p.Len())
		if d < radius/2 {
			inner++
		}
		fill[i] = math.Pow(d/radius, 3)
		if d > 0 {
			cosPolar[i] = float64(p.Z()) / d
		}
	}

	frac := float64(inner) / n
	assert.InDelta(t, 1.0/8.0, frac, 0.01, "fraction inside half radius")
	assert.InDelta(t, 0.5, stat.Mean(fill, nil), 0.01, "mean of (r/R)^3")
	assert.InDelta(t, 0, stat.Mean(cosPolar, nil), 0.02, "directions should be isotropic")
}

func TestScatterPositionDeterministic(t *testing.T) {
	a := ScatterPosition(15, rand.New(rand.NewSource(5)))
	b := ScatterPosition(15, rand.New(rand.NewSource(5)))
	assert.Equal(t, a, b)
}
