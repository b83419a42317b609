package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arix/systems"
	"github.com/pthm-cable/arix/telemetry"
)

// Update advances one graphical frame using the raylib clock.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()

	now := rl.GetTime()
	if !g.started {
		g.startTime = now
		g.started = true
	}

	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	// The perf frame stays open until Draw has synced the buffers
	g.step(float32(now - g.startTime))
}

// UpdateHeadless advances one frame on a fixed clock without touching raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()

	elapsed, toggle := g.clock.Tick(g.frame + 1)
	if toggle {
		g.Toggle()
	}

	g.step(float32(elapsed))

	g.perfCollector.EndFrame()
	g.flushPerf()
}

// step runs the animation systems for one frame inside an open perf frame.
func (g *Game) step(elapsed float32) {
	g.frame++
	g.elapsed = elapsed

	frame := systems.Frame{
		Number:  g.frame,
		Elapsed: elapsed,
		Mode:    g.mode.Mode(),
	}

	g.perfCollector.StartPhase(telemetry.PhaseAnimate)
	g.animator.Update(frame, g.buffers)

	g.perfCollector.StartPhase(telemetry.PhaseCamera)
	g.camera.Update(g.mode.AutoRotate())

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.sampleTelemetry(frame)
}
