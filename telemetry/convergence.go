package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/instancing"
	"github.com/pthm-cable/arix/systems"
)

// ConvergenceStats summarises how far one category is from its active formation.
type ConvergenceStats struct {
	Frame    uint64  `csv:"frame"`
	Elapsed  float64 `csv:"elapsed"`
	Mode     string  `csv:"mode"`
	Category string  `csv:"category"`
	Count    int     `csv:"count"`
	Mean     float64 `csv:"mean_dist"`
	Median   float64 `csv:"median_dist"`
	P90      float64 `csv:"p90_dist"`
	Max      float64 `csv:"max_dist"`
	Toggles  uint64  `csv:"toggles"`
}

// Collector samples convergence every interval frames.
type Collector struct {
	interval uint64
	dists    []float64 // reused between samples
}

// NewCollector creates a collector sampling every interval frames.
func NewCollector(interval int) *Collector {
	if interval < 1 {
		interval = 1
	}
	return &Collector{interval: uint64(interval)}
}

// ShouldSample reports whether frame falls on the sampling interval.
func (c *Collector) ShouldSample(frame uint64) bool {
	return frame%c.interval == 0
}

// Measure computes per-category distance statistics between the live
// positions in buffers and the targets of frame.Mode.
func (c *Collector) Measure(ds *systems.Dataset, buffers instancing.Set, frame systems.Frame, toggles uint64) []ConvergenceStats {
	out := make([]ConvergenceStats, 0, components.NumCategories)

	for _, cat := range components.Categories {
		buf := buffers.Get(cat)
		n := ds.Len(cat)
		if buf == nil || n == 0 {
			continue
		}

		c.dists = c.dists[:0]
		for i := 0; i < n; i++ {
			rec := ds.Record(cat, i)
			d := buf.At(i).Position.Sub(rec.Target(frame.Mode)).Len()
			c.dists = append(c.dists, float64(d))
		}

		out = append(out, Summarize(c.dists, ConvergenceStats{
			Frame:    frame.Number,
			Elapsed:  float64(frame.Elapsed),
			Mode:     frame.Mode.String(),
			Category: cat.String(),
			Toggles:  toggles,
		}))
	}

	return out
}

// Summarize fills the distribution fields of base from dists. dists is sorted in place.
func Summarize(dists []float64, base ConvergenceStats) ConvergenceStats {
	base.Count = len(dists)
	if len(dists) == 0 {
		return base
	}
	sort.Float64s(dists)
	base.Mean = stat.Mean(dists, nil)
	base.Median = stat.Quantile(0.5, stat.Empirical, dists, nil)
	base.P90 = stat.Quantile(0.9, stat.Empirical, dists, nil)
	base.Max = floats.Max(dists)
	return base
}

// LogConvergence emits one structured log line per category.
func LogConvergence(rows []ConvergenceStats) {
	for _, r := range rows {
		slog.Info("convergence",
			"frame", r.Frame,
			"mode", r.Mode,
			"category", r.Category,
			"mean", r.Mean,
			"p90", r.P90,
			"max", r.Max,
		)
	}
}
