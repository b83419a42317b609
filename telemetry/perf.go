package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase identifies one timed section of a frame.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseAnimate
	PhaseCamera
	PhaseTelemetry
	PhaseSync
	numPhases
)

var phaseNames = [numPhases]string{"input", "animate", "camera", "telemetry", "sync"}

func (p Phase) String() string {
	if p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// phaseNone marks that no phase is open.
const phaseNone = numPhases

// frameSample holds timing for one frame.
type frameSample struct {
	step   time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector keeps a ring of recent frame timings.
type PerfCollector struct {
	ring  []frameSample
	next  int
	count int

	current    frameSample
	frameStart time.Time
	phaseStart time.Time
	open       Phase

	// Wall-clock spacing between rendered frames
	lastWallFrame time.Time
	frameDuration time.Duration

	scratch []float64
}

// NewPerfCollector creates a collector averaging over windowSize frames (60 if < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:    make([]frameSample, windowSize),
		scratch: make([]float64, 0, windowSize),
		open:    phaseNone,
	}
}

// StartFrame begins timing a frame.
func (p *PerfCollector) StartFrame() {
	now := time.Now()
	p.frameStart = now
	p.phaseStart = now
	p.current = frameSample{}
	p.open = phaseNone
}

// StartPhase closes the open phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.open = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.open < numPhases {
		p.current.phases[p.open] += now.Sub(p.phaseStart)
	}
}

// EndFrame closes the frame and stores it in the ring.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	p.closePhase(now)
	p.open = phaseNone
	p.current.step = now.Sub(p.frameStart)

	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame notes a rendered frame for wall-clock FPS.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastWallFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastWallFrame)
	}
	p.lastWallFrame = now
}

// PerfStats aggregates the frames currently in the window.
type PerfStats struct {
	Frames int

	AvgStepDuration time.Duration
	P95StepDuration time.Duration
	MaxStepDuration time.Duration

	PhaseAvg [numPhases]time.Duration
	PhasePct [numPhases]float64 // Share of the average step

	StepsPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregates over the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Frames: p.count, FrameDuration: p.frameDuration}
	if p.frameDuration > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.count == 0 {
		return s
	}

	p.scratch = p.scratch[:0]
	var phaseSum [numPhases]time.Duration
	for i := 0; i < p.count; i++ {
		f := &p.ring[i]
		p.scratch = append(p.scratch, float64(f.step))
		for ph := range phaseSum {
			phaseSum[ph] += f.phases[ph]
		}
	}
	sort.Float64s(p.scratch)

	s.AvgStepDuration = time.Duration(stat.Mean(p.scratch, nil))
	s.P95StepDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, p.scratch, nil))
	s.MaxStepDuration = time.Duration(p.scratch[len(p.scratch)-1])

	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / time.Duration(p.count)
		if s.AvgStepDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgStepDuration) * 100
		}
	}
	if s.AvgStepDuration > 0 {
		s.StepsPerSecond = float64(time.Second) / float64(s.AvgStepDuration)
	}
	return s
}

// LogStats emits one slog line with step timing and the phase split.
func (s PerfStats) LogStats() {
	attrs := []any{
		"frames", s.Frames,
		"avg_step_us", s.AvgStepDuration.Microseconds(),
		"p95_step_us", s.P95StepDuration.Microseconds(),
		"max_step_us", s.MaxStepDuration.Microseconds(),
		"steps_per_sec", int(s.StepsPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, ph.String()+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    uint64  `csv:"window_end"`
	AvgStepUS    int64   `csv:"avg_step_us"`
	P95StepUS    int64   `csv:"p95_step_us"`
	MaxStepUS    int64   `csv:"max_step_us"`
	StepsPerSec  float64 `csv:"steps_per_sec"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	AnimatePct   float64 `csv:"animate_pct"`
	CameraPct    float64 `csv:"camera_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
	SyncPct      float64 `csv:"sync_pct"`
}

// ToCSV flattens s for the frame that closed the window.
func (s PerfStats) ToCSV(windowEnd uint64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgStepUS:    s.AvgStepDuration.Microseconds(),
		P95StepUS:    s.P95StepDuration.Microseconds(),
		MaxStepUS:    s.MaxStepDuration.Microseconds(),
		StepsPerSec:  s.StepsPerSecond,
		FPS:          s.FPS,
		InputPct:     s.PhasePct[PhaseInput],
		AnimatePct:   s.PhasePct[PhaseAnimate],
		CameraPct:    s.PhasePct[PhaseCamera],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
		SyncPct:      s.PhasePct[PhaseSync],
	}
}
