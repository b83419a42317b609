package main

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/instancing"
	"github.com/pthm-cable/arix/systems"
	"github.com/pthm-cable/arix/telemetry"
)

// Targets holds the desired settle time per transition, in frames.
type Targets struct {
	Assemble float64
	Scatter  float64
}

// SettleResult holds frames until p90 distance fell under the threshold,
// per category and transition. maxFrames means it never settled.
type SettleResult struct {
	Assemble [components.NumCategories]uint64
	Scatter  [components.NumCategories]uint64
}

// FitnessEvaluator runs headless transitions and scores settle times.
type FitnessEvaluator struct {
	params     *ParamVector
	maxFrames  uint64
	seeds      []int64
	baseConfig *config.Config
	threshold  float64
	targets    Targets

	mu   sync.Mutex
	last SettleResult
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxFrames uint64, seeds []int64, baseCfg *config.Config, threshold float64, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxFrames:  maxFrames,
		seeds:      seeds,
		baseConfig: baseCfg,
		threshold:  threshold,
		targets:    targets,
	}
}

// LastResult returns the settle times of the first seed of the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() SettleResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate scores raw parameter values (lower = better): the mean squared
// relative error between settle and target times across seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]SettleResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = runTransitions(cfg, s, fe.threshold, fe.maxFrames)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, r := range results {
		total += fe.score(r)
	}

	if len(results) > 0 {
		fe.mu.Lock()
		fe.last = results[0]
		fe.mu.Unlock()
	}

	return total / float64(len(fe.seeds))
}

func (fe *FitnessEvaluator) score(r SettleResult) float64 {
	var s float64
	for _, cat := range components.Categories {
		s += relErrSq(float64(r.Assemble[cat]), fe.targets.Assemble)
		s += relErrSq(float64(r.Scatter[cat]), fe.targets.Scatter)
	}
	return s
}

func relErrSq(got, want float64) float64 {
	if want <= 0 {
		return 0
	}
	d := (got - want) / want
	return d * d
}

func (fe *FitnessEvaluator) copyConfig() *config.Config {
	c := *fe.baseConfig
	return &c
}

// runTransitions starts every particle at the origin, assembles the tree,
// then scatters it, recording how many frames each category needs to settle.
func runTransitions(cfg *config.Config, seed int64, threshold float64, maxFrames uint64) SettleResult {
	rng := rand.New(rand.NewSource(seed))
	ds, err := systems.BuildDataset(cfg, rng)
	if err != nil {
		return unsettled(maxFrames)
	}

	buffers := instancing.NewSet(ds.Len)
	animator := systems.NewAnimatorFromConfig(ds, cfg)
	collector := telemetry.NewCollector(1)

	var res SettleResult
	var frame uint64
	res.Assemble = settle(ds, buffers, animator, collector, components.Assembled, threshold, maxFrames, &frame)
	res.Scatter = settle(ds, buffers, animator, collector, components.Scattered, threshold, maxFrames, &frame)
	return res
}

// settle steps mode until every category's p90 distance drops under threshold or maxFrames pass.
func settle(ds *systems.Dataset, buffers instancing.Set, a *systems.Animator, c *telemetry.Collector, mode components.Mode, threshold float64, maxFrames uint64, frame *uint64) [components.NumCategories]uint64 {
	var out [components.NumCategories]uint64
	var done [components.NumCategories]bool
	for i := range out {
		out[i] = maxFrames
	}

	for n := uint64(1); n <= maxFrames; n++ {
		*frame++
		f := systems.Frame{Number: *frame, Mode: mode}
		a.Update(f, buffers)

		remaining := 0
		for _, row := range c.Measure(ds, buffers, f, 0) {
			cat := categoryByName(row.Category)
			if done[cat] {
				continue
			}
			if row.P90 < threshold {
				out[cat] = n
				done[cat] = true
				continue
			}
			remaining++
		}
		if remaining == 0 {
			break
		}
	}
	return out
}

func categoryByName(name string) components.Category {
	for _, cat := range components.Categories {
		if cat.String() == name {
			return cat
		}
	}
	return components.Leaf
}

func unsettled(maxFrames uint64) SettleResult {
	var r SettleResult
	for _, cat := range components.Categories {
		r.Assemble[cat] = maxFrames
		r.Scatter[cat] = maxFrames
	}
	return r
}

// secondsToFrames converts a duration at the given frame rate.
func secondsToFrames(seconds float64, fps int) float64 {
	return math.Round(seconds * float64(fps))
}
