package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/arix/config"
)

func testConfig() config.CameraConfig {
	return config.CameraConfig{
		Distance:        25,
		Fovy:            35,
		MinDistance:     8,
		MaxDistance:     60,
		AutoRotateSpeed: 0.5,
		RotateSpeed:     1,
		ZoomSpeed:       2,
	}
}

func TestNew(t *testing.T) {
	cam := New(testConfig())

	// Eye starts on +Z looking at the origin
	pos := cam.Position()
	if pos.Sub(mgl32.Vec3{0, 0, 25}).Len() > 1e-4 {
		t.Errorf("expected camera at (0, 0, 25), got %v", pos)
	}
	if cam.Fovy != 35 {
		t.Errorf("expected fovy 35, got %f", cam.Fovy)
	}
}

func TestAutoRotateOnlyWhenEnabled(t *testing.T) {
	cam := New(testConfig())

	cam.Update(false)
	if cam.Azimuth != 0 {
		t.Errorf("azimuth moved without auto-rotate: %f", cam.Azimuth)
	}

	cam.Update(true)
	want := -float32(2 * math.Pi / 3600 * 0.5)
	if math.Abs(float64(cam.Azimuth-want)) > 1e-7 {
		t.Errorf("azimuth after one frame = %f, want %f", cam.Azimuth, want)
	}
}

func TestAutoRotateFullOrbit(t *testing.T) {
	cam := New(testConfig())
	cam.AutoRotateSpeed = 1

	// Speed 1 orbits once per 3600 frames
	for i := 0; i < 3600; i++ {
		cam.Update(true)
	}
	pos := cam.Position()
	if pos.Sub(mgl32.Vec3{0, 0, 25}).Len() > 0.1 {
		t.Errorf("expected camera back at start after one orbit, got %v", pos)
	}
}

func TestRotateClampsElevation(t *testing.T) {
	cam := New(testConfig())

	cam.Rotate(0, 100000, 720)
	if cam.Elevation > maxElevation+1e-6 {
		t.Errorf("elevation %f exceeds clamp %f", cam.Elevation, maxElevation)
	}
	cam.Rotate(0, -200000, 720)
	if cam.Elevation < -maxElevation-1e-6 {
		t.Errorf("elevation %f below clamp %f", cam.Elevation, -maxElevation)
	}

	// Distance from target is preserved whatever the angles
	if d := cam.Position().Len(); math.Abs(float64(d-25)) > 1e-3 {
		t.Errorf("orbit radius changed to %f", d)
	}
}

func TestRotateIgnoresEmptyViewport(t *testing.T) {
	cam := New(testConfig())
	cam.Rotate(50, 50, 0)
	if cam.Azimuth != 0 || cam.Elevation != 0 {
		t.Errorf("rotation applied with zero viewport: %f %f", cam.Azimuth, cam.Elevation)
	}
}

func TestZoomClamps(t *testing.T) {
	testCases := []struct {
		name  string
		wheel float32
		want  float32
	}{
		{"zoom in hard", 1000, 8},
		{"zoom out hard", -1000, 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(testConfig())
			cam.Zoom(tc.wheel)
			if cam.Distance != tc.want {
				t.Errorf("distance = %f, want %f", cam.Distance, tc.want)
			}
		})
	}
}

func TestZoomStep(t *testing.T) {
	cam := New(testConfig())
	cam.Zoom(1)
	want := float32(25 * math.Pow(0.95, 2))
	if math.Abs(float64(cam.Distance-want)) > 1e-4 {
		t.Errorf("distance = %f, want %f", cam.Distance, want)
	}
}

func TestReset(t *testing.T) {
	cam := New(testConfig())
	cam.Rotate(100, 50, 720)
	cam.Zoom(3)
	cam.Reset()

	if cam.Azimuth != 0 || cam.Elevation != 0 || cam.Distance != 25 {
		t.Errorf("reset left az=%f el=%f d=%f", cam.Azimuth, cam.Elevation, cam.Distance)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{4, 4 - 2*math.Pi},
		{-4, -4 + 2*math.Pi},
	}
	for _, tt := range tests {
		got := normalizeAngle(tt.in)
		if math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("normalizeAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
