// Package components defines the value types shared by the animation core,
// the instance buffers and the ECS dataset.
package components

import "github.com/go-gl/mathgl/mgl32"

// Category identifies one instanced particle set.
type Category uint8

const (
	Leaf     Category = iota // Small emerald gems
	Ornament                 // Larger gold spheres
)

// NumCategories is the number of particle categories.
const NumCategories = 2

// Categories lists every category in slot order.
var Categories = [NumCategories]Category{Leaf, Ornament}

func (c Category) String() string {
	switch c {
	case Leaf:
		return "leaf"
	case Ornament:
		return "ornament"
	}
	return "unknown"
}

// Mode selects which formation particles move toward.
type Mode uint8

const (
	Assembled Mode = iota // Tree spiral
	Scattered             // Sphere cloud
)

func (m Mode) String() string {
	if m == Scattered {
		return "scattered"
	}
	return "assembled"
}

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == Assembled {
		return Scattered
	}
	return Assembled
}

// ParticleRecord holds the static attributes of one particle.
// Records are built once and never written afterwards.
type ParticleRecord struct {
	Scatter       mgl32.Vec3
	Tree          mgl32.Vec3
	Scale         float32
	RotationPhase float32 // Leaves only, zero for ornaments
}

// Target returns the formation point for the given mode.
func (r *ParticleRecord) Target(m Mode) mgl32.Vec3 {
	if m == Assembled {
		return r.Tree
	}
	return r.Scatter
}

// Slot binds a dataset entity to its instance slot.
type Slot struct {
	Category Category
	Index    int32
}

// Transform is the live per-instance state.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles, XYZ order, radians
	Scale    float32
}

// IdentityTransform returns a transform at the origin with no rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Matrix composes T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl32.Scale3D(t.Scale, t.Scale, t.Scale))
}
