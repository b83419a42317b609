package systems

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
)

// CategorySpec holds what the builder needs to generate one category.
type CategorySpec struct {
	Count    int
	Noise    float32
	ScaleMin float32
	ScaleMax float32
	Phase    bool
}

// CategorySpecFromConfig converts a category config section.
func CategorySpecFromConfig(cc config.CategoryConfig) CategorySpec {
	return CategorySpec{
		Count:    cc.Count,
		Noise:    float32(cc.Noise),
		ScaleMin: float32(cc.ScaleMin),
		ScaleMax: float32(cc.ScaleMax),
		Phase:    cc.Phase,
	}
}

// Dataset owns the static particle records. Each particle is an ECS entity
// carrying its Slot and ParticleRecord; entities are never added or removed
// after BuildDataset returns.
type Dataset struct {
	world *ecs.World

	particleMapper *ecs.Map2[components.Slot, components.ParticleRecord]
	particleFilter *ecs.Filter2[components.Slot, components.ParticleRecord]

	// Per-category entity handles indexed by instance slot
	entities [components.NumCategories][]ecs.Entity
}

// BuildDataset generates every particle record from the config.
func BuildDataset(cfg *config.Config, rng *rand.Rand) (*Dataset, error) {
	specs := [components.NumCategories]CategorySpec{
		components.Leaf:     CategorySpecFromConfig(cfg.Leaf),
		components.Ornament: CategorySpecFromConfig(cfg.Ornament),
	}
	return BuildDatasetWith(TreeShapeFromConfig(cfg), cfg.Derived.ScatterRadius32, specs, rng)
}

// BuildDatasetWith generates records from explicit parameters.
// Non-positive counts or dimensions are configuration errors.
func BuildDatasetWith(shape TreeShape, scatterRadius float32, specs [components.NumCategories]CategorySpec, rng *rand.Rand) (*Dataset, error) {
	if shape.Height <= 0 || shape.Radius <= 0 {
		return nil, fmt.Errorf("%w: tree height %v and radius %v must be positive", config.ErrInvalid, shape.Height, shape.Radius)
	}
	if scatterRadius <= 0 {
		return nil, fmt.Errorf("%w: scatter radius %v must be positive", config.ErrInvalid, scatterRadius)
	}
	for _, cat := range components.Categories {
		if specs[cat].Count <= 0 {
			return nil, fmt.Errorf("%w: %s count %d must be positive", config.ErrInvalid, cat, specs[cat].Count)
		}
	}

	world := ecs.NewWorld()
	ds := &Dataset{
		world:          world,
		particleMapper: ecs.NewMap2[components.Slot, components.ParticleRecord](world),
		particleFilter: ecs.NewFilter2[components.Slot, components.ParticleRecord](world),
	}

	for _, cat := range components.Categories {
		spec := specs[cat]
		ds.entities[cat] = make([]ecs.Entity, spec.Count)
		for i := 0; i < spec.Count; i++ {
			slot := components.Slot{Category: cat, Index: int32(i)}
			rec := components.ParticleRecord{
				Scatter: ScatterPosition(scatterRadius, rng),
				Tree:    TreePosition(i, spec.Count, shape, spec.Noise, rng),
				Scale:   randRange(rng, spec.ScaleMin, spec.ScaleMax),
			}
			if spec.Phase {
				rec.RotationPhase = randRange(rng, 0, math.Pi)
			}
			ds.entities[cat][i] = ds.particleMapper.NewEntity(&slot, &rec)
		}
	}

	slog.Debug("dataset built",
		"leaves", specs[components.Leaf].Count,
		"ornaments", specs[components.Ornament].Count,
	)

	return ds, nil
}

// Len returns the number of particles in a category.
func (d *Dataset) Len(cat components.Category) int {
	return len(d.entities[cat])
}

// Record returns a copy of the static record at slot i.
func (d *Dataset) Record(cat components.Category, i int) components.ParticleRecord {
	_, rec := d.particleMapper.Get(d.entities[cat][i])
	return *rec
}

// Phases returns the rotation phase of every particle in a category, in slot order.
func (d *Dataset) Phases(cat components.Category) []float32 {
	out := make([]float32, d.Len(cat))
	for i, e := range d.entities[cat] {
		_, rec := d.particleMapper.Get(e)
		out[i] = rec.RotationPhase
	}
	return out
}

// Each calls fn for every particle with a read-only view of its slot and record.
func (d *Dataset) Each(fn func(slot components.Slot, rec *components.ParticleRecord)) {
	query := d.particleFilter.Query()
	for query.Next() {
		slot, rec := query.Get()
		fn(*slot, rec)
	}
}
