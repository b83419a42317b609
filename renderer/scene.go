// Package renderer draws the particle scene with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/camera"
	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/instancing"
	"github.com/pthm-cable/arix/systems"
)

// Contact shadow appearance
const (
	shadowOpacity = 0.5
	shadowSlack   = 0.6 // Gap between the tree base and the shadow disc
	shadowSpread  = 1.8 // Shadow radius relative to the tree base radius
)

// Scene owns the raylib resources for both particle categories.
type Scene struct {
	batches [components.NumCategories]*ParticleBatch
	palette config.Palette

	shadowY      float32
	shadowRadius float32
}

// NewScene creates meshes and materials for every category.
// Must be called after the raylib window exists.
func NewScene(cfg *config.Config, ds *systems.Dataset, buffers instancing.Set) (*Scene, error) {
	palette, err := cfg.Palette.Colors()
	if err != nil {
		return nil, err
	}

	s := &Scene{
		palette:      palette,
		shadowY:      -cfg.Derived.TreeHeight32/2 - shadowSlack,
		shadowRadius: cfg.Derived.TreeRadius32 * shadowSpread,
	}

	// Leaves are low-poly gems: a sphere with 2 rings and 4 slices is an octahedron
	s.batches[components.Leaf] = NewParticleBatch(
		rl.GenMeshSphere(1, 2, 4),
		buffers.Get(components.Leaf),
		ds.Phases(components.Leaf),
		palette.Emerald,
		Shimmer{
			Base:      float32(cfg.Shimmer.LeafEmissive),
			Amplitude: float32(cfg.Shimmer.Amplitude),
			Rate:      float32(cfg.Shimmer.Rate),
		},
	)
	s.batches[components.Ornament] = NewParticleBatch(
		rl.GenMeshSphere(1, 32, 32),
		buffers.Get(components.Ornament),
		nil,
		palette.Gold,
		Shimmer{Base: float32(cfg.Shimmer.OrnamentEmissive)},
	)

	return s, nil
}

// Palette returns the parsed scene colours.
func (s *Scene) Palette() config.Palette { return s.palette }

// Sync pulls dirty instance buffers into the batches and returns how many changed.
func (s *Scene) Sync() int {
	n := 0
	for _, b := range s.batches {
		if b.Sync() {
			n++
		}
	}
	return n
}

// Draw renders the shadow and both particle sets. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(cam rl.Camera3D, group mgl32.Mat4, elapsed float32) {
	rl.BeginMode3D(cam)

	rl.DrawCylinder(
		rl.NewVector3(0, s.shadowY, 0),
		s.shadowRadius, s.shadowRadius, 0.01, 48,
		rl.ColorAlpha(rl.Black, shadowOpacity),
	)

	for _, b := range s.batches {
		b.Draw(group, elapsed)
	}

	rl.EndMode3D()
}

// Unload releases all GPU resources.
func (s *Scene) Unload() {
	for _, b := range s.batches {
		b.Unload()
	}
}

// Camera3D converts the orbit camera into a raylib camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	pos := c.Position()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(c.Target.X(), c.Target.Y(), c.Target.Z()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// toMatrix converts a column-major mathgl matrix into raylib's named-field layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
