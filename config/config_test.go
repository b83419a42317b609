package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.Leaf.Count)
	assert.Equal(t, 150, cfg.Ornament.Count)
	assert.Equal(t, 12.0, cfg.Scene.TreeHeight)
	assert.Equal(t, 4.5, cfg.Scene.TreeRadius)
	assert.Equal(t, 15.0, cfg.Scene.ScatterRadius)
	assert.InDelta(t, 2.39996, cfg.Scene.GoldenAngle, 1e-9)

	assert.Equal(t, 0.04, cfg.Leaf.AssembleLerp)
	assert.Equal(t, 0.02, cfg.Leaf.ScatterLerp)
	assert.Equal(t, 0.05, cfg.Ornament.AssembleLerp)
	assert.Equal(t, 0.03, cfg.Ornament.ScatterLerp)

	assert.True(t, cfg.Leaf.Phase)
	assert.False(t, cfg.Ornament.Phase)
	assert.Zero(t, cfg.Ornament.SpinRate)

	assert.Equal(t, 1650, cfg.Derived.TotalParticles)
	assert.Equal(t, float32(12), cfg.Derived.TreeHeight32)
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	user := "leaf:\n  count: 4\nscene:\n  tree_height: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(user), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Leaf.Count)
	assert.Equal(t, 20.0, cfg.Scene.TreeHeight)
	// Untouched fields keep their defaults
	assert.Equal(t, 0.5, cfg.Leaf.Noise)
	assert.Equal(t, 4.5, cfg.Scene.TreeRadius)
	assert.Equal(t, 154, cfg.Derived.TotalParticles)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero leaf count", func(c *Config) { c.Leaf.Count = 0 }},
		{"negative ornament count", func(c *Config) { c.Ornament.Count = -3 }},
		{"zero tree height", func(c *Config) { c.Scene.TreeHeight = 0 }},
		{"zero tree radius", func(c *Config) { c.Scene.TreeRadius = 0 }},
		{"negative scatter radius", func(c *Config) { c.Scene.ScatterRadius = -1 }},
		{"zero golden angle", func(c *Config) { c.Scene.GoldenAngle = 0 }},
		{"inverted scale range", func(c *Config) { c.Leaf.ScaleMin, c.Leaf.ScaleMax = 0.5, 0.1 }},
		{"zero scale", func(c *Config) { c.Ornament.ScaleMin = 0 }},
		{"lerp above one", func(c *Config) { c.Leaf.AssembleLerp = 1.5 }},
		{"zero scatter lerp", func(c *Config) { c.Ornament.ScatterLerp = 0 }},
		{"negative noise", func(c *Config) { c.Leaf.Noise = -0.1 }},
		{"zero sample interval", func(c *Config) { c.Telemetry.SampleInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v should wrap ErrInvalid", err)
		})
	}
}

func TestRefreshRecomputesDerived(t *testing.T) {
	cfg := Default()
	cfg.Leaf.Count = 10
	cfg.Scene.TreeHeight = 3
	require.NoError(t, cfg.Refresh())
	assert.Equal(t, 160, cfg.Derived.TotalParticles)
	assert.Equal(t, float32(3), cfg.Derived.TreeHeight32)

	cfg.Leaf.Count = 0
	assert.ErrorIs(t, cfg.Refresh(), ErrInvalid)
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Ornament.Count = 42

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Ornament.Count)
	assert.Equal(t, cfg.Palette, loaded.Palette)
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	assert.Panics(t, func() { Cfg() })
	require.NoError(t, Init(""))
	assert.NotNil(t, Cfg())
}
