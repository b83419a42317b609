package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
)

// evalRow is one line of tune_log.csv.
type evalRow struct {
	Eval              int     `csv:"eval"`
	Fitness           float64 `csv:"fitness"`
	LeafAssemble      float64 `csv:"leaf_assemble"`
	LeafScatter       float64 `csv:"leaf_scatter"`
	OrnamentAssemble  float64 `csv:"ornament_assemble"`
	OrnamentScatter   float64 `csv:"ornament_scatter"`
	LeafAssembleAt    uint64  `csv:"leaf_assemble_frames"`
	OrnamentScatterAt uint64  `csv:"ornament_scatter_frames"`
}

// formatDuration formats a duration as MM:SS, with hours when needed.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	maxSeconds := flag.Float64("max-seconds", 20, "Give up on a transition after this many seconds")
	assembleSec := flag.Float64("assemble-seconds", 2.5, "Target settle time toward the tree")
	scatterSec := flag.Float64("scatter-seconds", 4, "Target settle time toward the cloud")
	threshold := flag.Float64("threshold", 0.05, "p90 distance counted as settled")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		slog.Error("--output is required")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	fps := baseCfg.Screen.TargetFPS

	params := NewParamVector(baseCfg)

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	targets := Targets{
		Assemble: secondsToFrames(*assembleSec, fps),
		Scatter:  secondsToFrames(*scatterSec, fps),
	}
	maxFrames := uint64(secondsToFrames(*maxSeconds, fps))
	evaluator := NewFitnessEvaluator(params, maxFrames, evalSeeds, baseCfg, *threshold, targets)

	dim := params.Dim()
	initX := params.Normalize(params.DefaultVector())

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	logFile, err := os.Create(filepath.Join(*outputDir, "tune_log.csv"))
	if err != nil {
		slog.Error("failed to create log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	headerWritten := false
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			last := evaluator.LastResult()
			row := []evalRow{{
				Eval:              evalCount,
				Fitness:           fitness,
				LeafAssemble:      raw[0],
				LeafScatter:       raw[1],
				OrnamentAssemble:  raw[2],
				OrnamentScatter:   raw[3],
				LeafAssembleAt:    last.Assemble[components.Leaf],
				OrnamentScatterAt: last.Scatter[components.Ornament],
			}}
			if err := writeRows(logFile, row, &headerWritten); err != nil {
				slog.Warn("failed to write tune log", "error", err)
			}

			elapsed := time.Since(startTime)
			remaining := time.Duration(*maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
			fmt.Printf("Eval %d/%d: fitness=%.4f (best=%.4f) | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, fitness, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))

			return fitness
		},
	}

	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, *maxEvals)
	fmt.Printf("Targets: assemble=%.0f frames, scatter=%.0f frames, threshold=%.3f\n", targets.Assemble, targets.Scatter, *threshold)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		slog.Info("optimization ended", "reason", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Path, bestParams[i])
	}

	bestCfg := *baseCfg
	params.ApplyToConfig(&bestCfg, bestParams)
	outPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(outPath); err != nil {
		slog.Error("failed to write best config", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\nBest config saved to: %s\n", outPath)
}

// writeRows appends rows as CSV, writing the header only on the first call.
func writeRows(f *os.File, rows []evalRow, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}
