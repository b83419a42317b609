package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseAnimate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseSync)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgStepDuration <= 0 {
		t.Error("expected positive average step duration")
	}
	if stats.PhaseAvg[PhaseAnimate] <= 0 {
		t.Error("expected animate phase to be tracked")
	}
	if stats.PhaseAvg[PhaseSync] <= 0 {
		t.Error("expected sync phase to be tracked")
	}
	if stats.PhaseAvg[PhaseInput] != 0 {
		t.Errorf("input phase never ran, got %v", stats.PhaseAvg[PhaseInput])
	}
	if stats.P95StepDuration < stats.AvgStepDuration/2 || stats.P95StepDuration > stats.MaxStepDuration {
		t.Errorf("p95 %v outside [avg/2, max] = [%v, %v]", stats.P95StepDuration, stats.AvgStepDuration/2, stats.MaxStepDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseAnimate)
		time.Sleep(10 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.Frames != 5 {
		t.Errorf("frames = %d, want window size 5", stats.Frames)
	}
	if stats.AvgStepDuration <= 0 {
		t.Error("expected positive average step duration after window filled")
	}
	if stats.StepsPerSecond <= 0 {
		t.Error("expected positive steps per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseCamera)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseAnimate)
		time.Sleep(500 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseAnimate] <= stats.PhasePct[PhaseCamera] {
		t.Errorf("expected animate (%v%%) > camera (%v%%)", stats.PhasePct[PhaseAnimate], stats.PhasePct[PhaseCamera])
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 {
		t.Errorf("window end = %d, want 42", row.WindowEnd)
	}
	if row.AnimatePct != stats.PhasePct[PhaseAnimate] {
		t.Errorf("animate pct = %v, want %v", row.AnimatePct, stats.PhasePct[PhaseAnimate])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()
	if stats.AvgStepDuration != 0 {
		t.Error("expected zero avg step duration for empty collector")
	}
	if stats.Frames != 0 {
		t.Errorf("frames = %d, want 0", stats.Frames)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 80 {
		t.Errorf("expected FPS in (0, 80] with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseAnimate.String() != "animate" || PhaseSync.String() != "sync" {
		t.Errorf("unexpected names %q %q", PhaseAnimate, PhaseSync)
	}
}
