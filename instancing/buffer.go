// Package instancing provides the per-category instance transform store
// that the animator writes and the renderer reads.
package instancing

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/components"
)

// Buffer is an index-addressed array of live instance transforms with a
// dirty flag. Capacity is fixed at construction.
type Buffer struct {
	transforms []components.Transform
	dirty      bool
}

// NewBuffer creates a buffer with every slot at the identity transform.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer{transforms: make([]components.Transform, capacity)}
	for i := range b.transforms {
		b.transforms[i] = components.IdentityTransform()
	}
	return b
}

// Len returns the number of slots.
func (b *Buffer) Len() int { return len(b.transforms) }

// At returns a copy of slot i.
func (b *Buffer) At(i int) components.Transform { return b.transforms[i] }

// SetAt overwrites slot i.
func (b *Buffer) SetAt(i int, t components.Transform) { b.transforms[i] = t }

// MatrixAt returns the packed model matrix of slot i.
func (b *Buffer) MatrixAt(i int) mgl32.Mat4 { return b.transforms[i].Matrix() }

// MarkDirty flags the buffer for re-upload.
func (b *Buffer) MarkDirty() { b.dirty = true }

// Dirty reports whether the buffer changed since the last ClearDirty.
func (b *Buffer) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag after a consumer synced the buffer.
func (b *Buffer) ClearDirty() { b.dirty = false }

// Positions appends the position of every slot to dst and returns it.
func (b *Buffer) Positions(dst []mgl32.Vec3) []mgl32.Vec3 {
	for i := range b.transforms {
		dst = append(dst, b.transforms[i].Position)
	}
	return dst
}

// Set holds one buffer per category.
type Set [components.NumCategories]*Buffer

// NewSet allocates one buffer per category using the given capacities.
func NewSet(capacity func(components.Category) int) Set {
	var s Set
	for _, cat := range components.Categories {
		s[cat] = NewBuffer(capacity(cat))
	}
	return s
}

// Get returns the buffer for a category.
func (s Set) Get(cat components.Category) *Buffer { return s[cat] }
