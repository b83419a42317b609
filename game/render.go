package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/renderer"
	"github.com/pthm-cable/arix/telemetry"
	"github.com/pthm-cable/arix/ui"
)

// Draw renders the scene and overlay. A click on the toggle button flips the mode.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseSync)
	g.scene.Sync()
	g.perfCollector.EndFrame()
	g.flushPerf()

	rl.BeginDrawing()
	rl.ClearBackground(g.scene.Palette().Background)

	g.scene.Draw(renderer.Camera3D(g.camera), g.float.Matrix(g.elapsed), g.elapsed)

	if g.overlay.Draw(g.mode.Mode(), g.screenWidth, g.screenHeight) {
		g.Toggle()
	}
	g.hud.Draw(g.hudData())

	rl.EndDrawing()
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		FPS:       rl.GetFPS(),
		Frame:     g.frame,
		Mode:      g.mode.Mode(),
		Toggles:   g.mode.Toggles(),
		Particles: g.cfg.Derived.TotalParticles,
		StepMs:    float64(g.perfCollector.Stats().AvgStepDuration.Microseconds()) / 1000,
	}
	for _, row := range g.lastSample {
		for _, cat := range components.Categories {
			if row.Category == cat.String() {
				data.MeanDist[cat] = row.Mean
			}
		}
	}
	return data
}
