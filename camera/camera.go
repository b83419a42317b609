// Package camera provides an orbit camera around the particle group.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/config"
)

// maxElevation keeps the camera just short of the poles so the up vector never flips.
const maxElevation = math.Pi/2 - 0.01

// Camera orbits a fixed target. Panning is disabled; the target never moves.
type Camera struct {
	// Target is the point the camera looks at
	Target mgl32.Vec3

	// Spherical coordinates of the eye relative to Target.
	// Azimuth 0 and Elevation 0 put the eye on the +Z axis.
	Distance  float32
	Azimuth   float32
	Elevation float32

	// Vertical field of view in degrees
	Fovy float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// AutoRotateSpeed of 1.0 completes one orbit per minute at 60fps
	AutoRotateSpeed float32
	RotateSpeed     float32
	ZoomSpeed       float32

	initialDistance float32
}

// New creates a camera from config, looking at the origin from +Z.
func New(cfg config.CameraConfig) *Camera {
	c := &Camera{
		Distance:        float32(cfg.Distance),
		Fovy:            float32(cfg.Fovy),
		MinDistance:     float32(cfg.MinDistance),
		MaxDistance:     float32(cfg.MaxDistance),
		AutoRotateSpeed: float32(cfg.AutoRotateSpeed),
		RotateSpeed:     float32(cfg.RotateSpeed),
		ZoomSpeed:       float32(cfg.ZoomSpeed),
		initialDistance: float32(cfg.Distance),
	}
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
	return c
}

// AutoRotateStep returns the azimuth change per frame while auto-rotating.
func (c *Camera) AutoRotateStep() float32 {
	return 2 * math.Pi / 60 / 60 * c.AutoRotateSpeed
}

// Update advances the orbit by one frame. Auto-rotation only runs when enabled,
// which the caller ties to the assembled formation.
func (c *Camera) Update(autoRotate bool) {
	if autoRotate {
		c.Azimuth = normalizeAngle(c.Azimuth - c.AutoRotateStep())
	}
}

// Rotate orbits by a mouse drag of (dx, dy) pixels on a viewport of the given height.
// A drag across the full height turns the camera a full circle.
func (c *Camera) Rotate(dx, dy, viewportH float32) {
	if viewportH <= 0 {
		return
	}
	k := 2 * math.Pi / viewportH * c.RotateSpeed
	c.Azimuth = normalizeAngle(c.Azimuth - dx*k)
	c.Elevation = clamp(c.Elevation+dy*k, -maxElevation, maxElevation)
}

// Zoom dollies in for positive wheel values and out for negative ones.
func (c *Camera) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	factor := float32(math.Pow(0.95, float64(wheel*c.ZoomSpeed)))
	c.SetDistance(c.Distance * factor)
}

// SetDistance sets the orbit radius, clamped to min/max.
func (c *Camera) SetDistance(d float32) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	cosEl := float32(math.Cos(float64(c.Elevation)))
	offset := mgl32.Vec3{
		c.Distance * cosEl * float32(math.Sin(float64(c.Azimuth))),
		c.Distance * float32(math.Sin(float64(c.Elevation))),
		c.Distance * cosEl * float32(math.Cos(float64(c.Azimuth))),
	}
	return c.Target.Add(offset)
}

// Reset returns the camera to its initial orbit.
func (c *Camera) Reset() {
	c.Azimuth = 0
	c.Elevation = 0
	c.SetDistance(c.initialDistance)
}
