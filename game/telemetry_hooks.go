package game

import (
	"log/slog"

	"github.com/pthm-cable/arix/systems"
	"github.com/pthm-cable/arix/telemetry"
)

// sampleTelemetry measures convergence on sampling frames and hands the rows
// to the log and the CSV output.
func (g *Game) sampleTelemetry(frame systems.Frame) {
	if !g.convergence.ShouldSample(frame.Number) {
		return
	}

	rows := g.convergence.Measure(g.dataset, g.buffers, frame, g.mode.Toggles())
	g.lastSample = rows

	if g.opts.LogStats {
		telemetry.LogConvergence(rows)
	}

	if err := g.outputManager.WriteConvergence(rows); err != nil {
		slog.Warn("failed to write convergence", "error", err)
	}
}

// flushPerf writes aggregated perf stats once per collector window.
func (g *Game) flushPerf() {
	window := uint64(g.cfg.Telemetry.PerfCollectorWindow)
	if window == 0 || g.frame%window != 0 {
		return
	}

	stats := g.perfCollector.Stats()

	if g.opts.LogStats {
		stats.LogStats()
	}

	if err := g.outputManager.WritePerf(stats, g.frame); err != nil {
		slog.Warn("failed to write perf", "error", err)
	}
}
