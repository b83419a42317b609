package systems

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/arix/config"
)

func TestFloatRigBounds(t *testing.T) {
	rig := NewFloatRig(config.FloatConfig{Speed: 2, RotationIntensity: 0.5, FloatIntensity: 0.5}, rand.New(rand.NewSource(1)))

	for i := 0; i < 600; i++ {
		tr := rig.Transform(float32(i) / 60)
		assert.LessOrEqual(t, abs32(tr.Position.Y()), float32(0.05)+1e-6)
		assert.Zero(t, tr.Position.X())
		assert.Zero(t, tr.Position.Z())
		assert.LessOrEqual(t, abs32(tr.Rotation.X()), float32(0.0625)+1e-6)
		assert.LessOrEqual(t, abs32(tr.Rotation.Y()), float32(0.0625)+1e-6)
		assert.LessOrEqual(t, abs32(tr.Rotation.Z()), float32(0.025)+1e-6)
		assert.Equal(t, float32(1), tr.Scale)
	}
}

func TestFloatRigZeroIntensityIsIdentity(t *testing.T) {
	rig := NewFloatRig(config.FloatConfig{Speed: 2}, rand.New(rand.NewSource(1)))
	assert.True(t, rig.Matrix(3.7).ApproxEqual(mgl32.Ident4()))
}

func TestFloatRigMoves(t *testing.T) {
	rig := NewFloatRig(config.FloatConfig{Speed: 2, RotationIntensity: 0.5, FloatIntensity: 0.5}, rand.New(rand.NewSource(1)))
	a := rig.Transform(0)
	b := rig.Transform(1)
	assert.NotEqual(t, a.Position.Y(), b.Position.Y())
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
