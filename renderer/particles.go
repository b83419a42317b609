package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/instancing"
)

// Shimmer modulates leaf brightness over time. Each instance is offset by its
// rotation phase so neighbours do not pulse together.
type Shimmer struct {
	Base      float32 // Constant emissive boost
	Amplitude float32 // Zero disables the pulse
	Rate      float32 // Radians per second
}

// intensity returns the emissive boost for an instance with the given phase.
func (s Shimmer) intensity(elapsed, phase float32) float32 {
	if s.Amplitude == 0 {
		return s.Base
	}
	return s.Base + s.Amplitude*sinf(elapsed*s.Rate+phase)
}

// ParticleBatch draws one category's instances from its instance buffer.
type ParticleBatch struct {
	mesh     rl.Mesh
	material rl.Material
	buffer   *instancing.Buffer

	// Local instance matrices, rebuilt only when the buffer is dirty
	local []mgl32.Mat4
	// Per-instance shimmer phase (nil or zeros for ornaments)
	phases []float32

	color   color.RGBA
	shimmer Shimmer
}

// NewParticleBatch creates a batch over buffer. Must be called after the raylib window exists.
func NewParticleBatch(mesh rl.Mesh, buffer *instancing.Buffer, phases []float32, c color.RGBA, shimmer Shimmer) *ParticleBatch {
	b := &ParticleBatch{
		mesh:     mesh,
		material: rl.LoadMaterialDefault(),
		buffer:   buffer,
		local:    make([]mgl32.Mat4, buffer.Len()),
		phases:   phases,
		color:    c,
		shimmer:  shimmer,
	}
	for i := range b.local {
		b.local[i] = buffer.MatrixAt(i)
	}
	return b
}

// Sync re-reads the instance buffer if it changed. Returns true when it did.
func (b *ParticleBatch) Sync() bool {
	if !b.buffer.Dirty() {
		return false
	}
	for i := range b.local {
		b.local[i] = b.buffer.MatrixAt(i)
	}
	b.buffer.ClearDirty()
	return true
}

// Draw renders every instance under the group transform.
func (b *ParticleBatch) Draw(group mgl32.Mat4, elapsed float32) {
	for i := range b.local {
		var phase float32
		if i < len(b.phases) {
			phase = b.phases[i]
		}
		b.material.Maps.Color = config.Emissive(b.color, b.shimmer.intensity(elapsed, phase))
		rl.DrawMesh(b.mesh, b.material, toMatrix(group.Mul4(b.local[i])))
	}
}

// Unload releases GPU resources.
func (b *ParticleBatch) Unload() {
	rl.UnloadMesh(&b.mesh)
	rl.UnloadMaterial(b.material)
}
