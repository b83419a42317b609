// Package game wires the particle dataset, animation systems, camera,
// renderer and telemetry into a frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/arix/camera"
	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/instancing"
	"github.com/pthm-cable/arix/renderer"
	"github.com/pthm-cable/arix/systems"
	"github.com/pthm-cable/arix/telemetry"
	"github.com/pthm-cable/arix/ui"
)

// DefaultFixedDT is the headless step length in seconds.
const DefaultFixedDT = 1.0 / 60.0

// Options configures a game instance.
type Options struct {
	Seed        int64
	Headless    bool
	LogStats    bool
	OutputDir   string
	ToggleEvery float64 // Headless auto-toggle period in seconds (0 = never)
	FixedDT     float64 // Headless step length in seconds (0 = DefaultFixedDT)
}

// Game holds the complete scene state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	dataset  *systems.Dataset
	buffers  instancing.Set
	animator *systems.Animator
	mode     *systems.ModeController
	float    *systems.FloatRig
	camera   *camera.Camera

	// Graphics only
	scene   *renderer.Scene
	overlay *ui.Overlay
	hud     *ui.HUD

	// Telemetry
	convergence   *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	lastSample    []telemetry.ConvergenceStats

	// Frame state
	frame     uint64
	elapsed   float32
	startTime float64 // rl.GetTime() at the first graphical update
	started   bool
	clock     *systems.HeadlessClock

	screenWidth, screenHeight int32
}

// NewGameWithOptions creates a game from the global config.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	return newGame(config.Cfg(), opts)
}

func newGame(cfg *config.Config, opts Options) (*Game, error) {
	if opts.FixedDT <= 0 {
		opts.FixedDT = DefaultFixedDT
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	ds, err := systems.BuildDataset(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("building dataset: %w", err)
	}

	buffers := instancing.NewSet(ds.Len)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	g := &Game{
		cfg:           cfg,
		opts:          opts,
		rng:           rng,
		dataset:       ds,
		buffers:       buffers,
		animator:      systems.NewAnimatorFromConfig(ds, cfg),
		mode:          systems.NewModeController(),
		float:         systems.NewFloatRig(cfg.Float, rng),
		camera:        camera.New(cfg.Camera),
		convergence:   telemetry.NewCollector(cfg.Telemetry.SampleInterval),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: om,
		clock:         systems.NewHeadlessClock(opts.FixedDT, opts.ToggleEvery),
		screenWidth:   int32(cfg.Screen.Width),
		screenHeight:  int32(cfg.Screen.Height),
	}

	if !opts.Headless {
		scene, err := renderer.NewScene(cfg, ds, buffers)
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating renderer: %w", err)
		}
		g.scene = scene
		theme := ui.NewTheme(scene.Palette())
		g.overlay = ui.NewOverlay(cfg.Screen.Title, theme)
		g.hud = ui.NewHUD(theme)
	}

	slog.Info("scene ready",
		"seed", opts.Seed,
		"leaves", ds.Len(components.Leaf),
		"ornaments", ds.Len(components.Ornament),
		"headless", opts.Headless,
	)

	return g, nil
}

// Toggle flips the formation mode and returns the new one.
func (g *Game) Toggle() components.Mode {
	m := g.mode.Toggle()
	slog.Info("mode toggled", "mode", m.String(), "frame", g.frame, "toggles", g.mode.Toggles())
	return m
}

// Mode returns the current formation mode.
func (g *Game) Mode() components.Mode { return g.mode.Mode() }

// Frame returns the number of completed frames.
func (g *Game) Frame() uint64 { return g.frame }

// Elapsed returns the seconds elapsed at the last step.
func (g *Game) Elapsed() float32 { return g.elapsed }

// Buffers returns the instance buffers the animator writes into.
func (g *Game) Buffers() instancing.Set { return g.buffers }

// Camera returns the orbit camera.
func (g *Game) Camera() *camera.Camera { return g.camera }

// LastConvergence returns the most recent convergence sample.
func (g *Game) LastConvergence() []telemetry.ConvergenceStats { return g.lastSample }

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.scene != nil {
		g.scene.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
	slog.Info("scene stopped", "frames", g.frame, "toggles", g.mode.Toggles())
}
