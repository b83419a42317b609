// Package main searches blend factors that settle each formation in a target time.
package main

import (
	"github.com/pthm-cable/arix/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the blend factor parameters, seeded from cfg.
func NewParamVector(cfg *config.Config) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "leaf_assemble", Path: "leaf.assemble_lerp", Min: 0.005, Max: 0.3, Default: cfg.Leaf.AssembleLerp},
			{Name: "leaf_scatter", Path: "leaf.scatter_lerp", Min: 0.005, Max: 0.3, Default: cfg.Leaf.ScatterLerp},
			{Name: "ornament_assemble", Path: "ornament.assemble_lerp", Min: 0.005, Max: 0.3, Default: cfg.Ornament.AssembleLerp},
			{Name: "ornament_scatter", Path: "ornament.scatter_lerp", Min: 0.005, Max: 0.3, Default: cfg.Ornament.ScatterLerp},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize maps raw values onto [0,1].
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize maps [0,1] values back onto each parameter's range.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped values into cfg in Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	cfg.Leaf.AssembleLerp = c[0]
	cfg.Leaf.ScatterLerp = c[1]
	cfg.Ornament.AssembleLerp = c[2]
	cfg.Ornament.ScatterLerp = c[3]
}
