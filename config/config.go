// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Scene     SceneConfig     `yaml:"scene"`
	Leaf      CategoryConfig  `yaml:"leaf"`
	Ornament  CategoryConfig  `yaml:"ornament"`
	Camera    CameraConfig    `yaml:"camera"`
	Float     FloatConfig     `yaml:"float"`
	Palette   PaletteConfig   `yaml:"palette"`
	Shimmer   ShimmerConfig   `yaml:"shimmer"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SceneConfig holds the dimensions of both formations.
type SceneConfig struct {
	TreeHeight    float64 `yaml:"tree_height"`
	TreeRadius    float64 `yaml:"tree_radius"`    // Radius at the base; shrinks linearly to 0 at the top
	ScatterRadius float64 `yaml:"scatter_radius"` // Radius of the scattered sphere volume
	GoldenAngle   float64 `yaml:"golden_angle"`   // Angular step between consecutive spiral points (radians)
}

// CategoryConfig holds per-category particle parameters.
type CategoryConfig struct {
	Count        int     `yaml:"count"`
	Noise        float64 `yaml:"noise"` // Jitter span around the spiral, applied as [-noise/2, noise/2]
	ScaleMin     float64 `yaml:"scale_min"`
	ScaleMax     float64 `yaml:"scale_max"`
	AssembleLerp float64 `yaml:"assemble_lerp"` // Per-frame blend factor toward the tree
	ScatterLerp  float64 `yaml:"scatter_lerp"`  // Per-frame blend factor toward the scatter cloud
	SpinRate     float64 `yaml:"spin_rate"`     // Radians per frame about Y, both modes
	TumbleRate   float64 `yaml:"tumble_rate"`   // Radians per frame about X, scattered only
	Phase        bool    `yaml:"phase"`         // Draw a rotation phase in [0, pi)
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance        float64 `yaml:"distance"`
	Fovy            float64 `yaml:"fovy"`
	MinDistance     float64 `yaml:"min_distance"`
	MaxDistance     float64 `yaml:"max_distance"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"` // 1.0 = one orbit per minute at 60fps
	RotateSpeed     float64 `yaml:"rotate_speed"`
	ZoomSpeed       float64 `yaml:"zoom_speed"`
}

// FloatConfig holds the group bob parameters.
type FloatConfig struct {
	Speed             float64 `yaml:"speed"`
	RotationIntensity float64 `yaml:"rotation_intensity"`
	FloatIntensity    float64 `yaml:"float_intensity"`
}

// PaletteConfig holds scene colours as #RRGGBB strings.
type PaletteConfig struct {
	Emerald    string `yaml:"emerald"`
	Gold       string `yaml:"gold"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
}

// ShimmerConfig holds the leaf emissive shimmer parameters.
type ShimmerConfig struct {
	LeafEmissive     float64 `yaml:"leaf_emissive"`     // Base brightness boost for leaves
	OrnamentEmissive float64 `yaml:"ornament_emissive"` // Constant brightness boost for ornaments
	Amplitude        float64 `yaml:"amplitude"`
	Rate             float64 `yaml:"rate"` // Radians per second
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	SampleInterval      int `yaml:"sample_interval"` // Frames between convergence samples
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TreeHeight32    float32
	TreeRadius32    float32
	ScatterRadius32 float32
	GoldenAngle32   float32
	ScreenW32       float32
	ScreenH32       float32
	TotalParticles  int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations that would break the formations.
// Everything checked here would otherwise surface as a division by zero
// or an empty instance buffer in the frame loop.
func (c *Config) Validate() error {
	if c.Scene.TreeHeight <= 0 {
		return fmt.Errorf("%w: scene.tree_height must be positive, got %v", ErrInvalid, c.Scene.TreeHeight)
	}
	if c.Scene.TreeRadius <= 0 {
		return fmt.Errorf("%w: scene.tree_radius must be positive, got %v", ErrInvalid, c.Scene.TreeRadius)
	}
	if c.Scene.ScatterRadius <= 0 {
		return fmt.Errorf("%w: scene.scatter_radius must be positive, got %v", ErrInvalid, c.Scene.ScatterRadius)
	}
	if c.Scene.GoldenAngle <= 0 {
		return fmt.Errorf("%w: scene.golden_angle must be positive, got %v", ErrInvalid, c.Scene.GoldenAngle)
	}
	if err := c.Leaf.validate("leaf"); err != nil {
		return err
	}
	if err := c.Ornament.validate("ornament"); err != nil {
		return err
	}
	if _, err := c.Palette.Colors(); err != nil {
		return err
	}
	if c.Telemetry.SampleInterval < 1 {
		return fmt.Errorf("%w: telemetry.sample_interval must be at least 1, got %d", ErrInvalid, c.Telemetry.SampleInterval)
	}
	return nil
}

func (cc CategoryConfig) validate(name string) error {
	if cc.Count <= 0 {
		return fmt.Errorf("%w: %s.count must be positive, got %d", ErrInvalid, name, cc.Count)
	}
	if cc.Noise < 0 {
		return fmt.Errorf("%w: %s.noise must not be negative, got %v", ErrInvalid, name, cc.Noise)
	}
	if cc.ScaleMin <= 0 || cc.ScaleMax < cc.ScaleMin {
		return fmt.Errorf("%w: %s scale range [%v, %v] is invalid", ErrInvalid, name, cc.ScaleMin, cc.ScaleMax)
	}
	if cc.AssembleLerp <= 0 || cc.AssembleLerp > 1 {
		return fmt.Errorf("%w: %s.assemble_lerp must be in (0, 1], got %v", ErrInvalid, name, cc.AssembleLerp)
	}
	if cc.ScatterLerp <= 0 || cc.ScatterLerp > 1 {
		return fmt.Errorf("%w: %s.scatter_lerp must be in (0, 1], got %v", ErrInvalid, name, cc.ScatterLerp)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TreeHeight32 = float32(c.Scene.TreeHeight)
	c.Derived.TreeRadius32 = float32(c.Scene.TreeRadius)
	c.Derived.ScatterRadius32 = float32(c.Scene.ScatterRadius)
	c.Derived.GoldenAngle32 = float32(c.Scene.GoldenAngle)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TotalParticles = c.Leaf.Count + c.Ornament.Count
}

// Refresh re-validates the config and recomputes derived values.
// Call it after mutating fields in code.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
