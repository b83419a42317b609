package instancing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/arix/components"
)

func TestNewBufferIdentity(t *testing.T) {
	b := NewBuffer(3)
	require.Equal(t, 3, b.Len())
	for i := 0; i < b.Len(); i++ {
		assert.Equal(t, components.IdentityTransform(), b.At(i))
		assert.True(t, b.MatrixAt(i).ApproxEqual(mgl32.Ident4()))
	}
	assert.False(t, b.Dirty())
}

func TestSetAtIsIndexed(t *testing.T) {
	b := NewBuffer(2)
	tr := components.Transform{Position: mgl32.Vec3{1, 2, 3}, Scale: 0.5}
	b.SetAt(1, tr)

	assert.Equal(t, tr, b.At(1))
	assert.Equal(t, components.IdentityTransform(), b.At(0), "slot 0 must be untouched")

	// Mutating the returned copy must not leak into the buffer
	got := b.At(1)
	got.Position = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, tr, b.At(1))
}

func TestDirtyFlag(t *testing.T) {
	b := NewBuffer(1)
	b.MarkDirty()
	assert.True(t, b.Dirty())
	b.ClearDirty()
	assert.False(t, b.Dirty())
}

func TestPositions(t *testing.T) {
	b := NewBuffer(2)
	b.SetAt(0, components.Transform{Position: mgl32.Vec3{1, 0, 0}, Scale: 1})
	b.SetAt(1, components.Transform{Position: mgl32.Vec3{0, 1, 0}, Scale: 1})

	got := b.Positions(nil)
	assert.Equal(t, []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}}, got)
}

func TestNewSet(t *testing.T) {
	s := NewSet(func(c components.Category) int {
		if c == components.Leaf {
			return 5
		}
		return 2
	})
	assert.Equal(t, 5, s.Get(components.Leaf).Len())
	assert.Equal(t, 2, s.Get(components.Ornament).Len())
	assert.NotSame(t, s.Get(components.Leaf), s.Get(components.Ornament))
}
