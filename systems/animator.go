package systems

import (
	"github.com/pthm-cable/arix/components"
	"github.com/pthm-cable/arix/config"
	"github.com/pthm-cable/arix/instancing"
)

// Motion holds the per-frame animation rates of one category.
type Motion struct {
	AssembleLerp float32 // Blend factor toward the tree
	ScatterLerp  float32 // Blend factor toward the scatter cloud
	Spin         float32 // Radians per frame about Y, both modes
	Tumble       float32 // Radians per frame about X, scattered only
}

// Blend returns the blend factor used while moving toward mode's formation.
func (m Motion) Blend(mode components.Mode) float32 {
	if mode == components.Assembled {
		return m.AssembleLerp
	}
	return m.ScatterLerp
}

// MotionFromConfig converts a category config section.
func MotionFromConfig(cc config.CategoryConfig) Motion {
	return Motion{
		AssembleLerp: float32(cc.AssembleLerp),
		ScatterLerp:  float32(cc.ScatterLerp),
		Spin:         float32(cc.SpinRate),
		Tumble:       float32(cc.TumbleRate),
	}
}

// Frame is the per-frame input threaded in by the render loop.
type Frame struct {
	Number  uint64
	Elapsed float32 // Seconds since start
	Mode    components.Mode
}

// Animator advances every instance transform one step toward the active formation.
type Animator struct {
	dataset *Dataset
	motions [components.NumCategories]Motion

	// Reused for every particle; each iteration overwrites it completely
	scratch components.Transform

	lastFrame uint64
}

// NewAnimator creates an animator over ds.
func NewAnimator(ds *Dataset, motions [components.NumCategories]Motion) *Animator {
	return &Animator{
		dataset: ds,
		motions: motions,
	}
}

// NewAnimatorFromConfig creates an animator using the category motion settings in cfg.
func NewAnimatorFromConfig(ds *Dataset, cfg *config.Config) *Animator {
	return NewAnimator(ds, [components.NumCategories]Motion{
		components.Leaf:     MotionFromConfig(cfg.Leaf),
		components.Ornament: MotionFromConfig(cfg.Ornament),
	})
}

// Usable reports whether buf can receive every particle of cat.
func (a *Animator) Usable(cat components.Category, buf *instancing.Buffer) bool {
	return buf != nil && buf.Len() >= a.dataset.Len(cat)
}

// Update moves every particle one step and marks each written buffer dirty.
// A category whose buffer is nil or shorter than the dataset is skipped
// whole: none of its slots are written and it is not marked dirty.
func (a *Animator) Update(frame Frame, targets instancing.Set) {
	var usable, touched [components.NumCategories]bool
	for _, cat := range components.Categories {
		usable[cat] = a.Usable(cat, targets[cat])
	}

	query := a.dataset.particleFilter.Query()
	for query.Next() {
		slot, rec := query.Get()
		if !usable[slot.Category] {
			continue
		}
		buf := targets[slot.Category]
		motion := &a.motions[slot.Category]
		idx := int(slot.Index)

		a.scratch = buf.At(idx)
		step(&a.scratch, rec, motion, frame.Mode)
		buf.SetAt(idx, a.scratch)

		touched[slot.Category] = true
	}

	for _, cat := range components.Categories {
		if touched[cat] {
			targets[cat].MarkDirty()
		}
	}
	a.lastFrame = frame.Number
}

// LastFrame returns the number of the most recent frame passed to Update.
func (a *Animator) LastFrame() uint64 { return a.lastFrame }

// step applies one frame of motion to t.
func step(t *components.Transform, rec *components.ParticleRecord, m *Motion, mode components.Mode) {
	target := rec.Target(mode)
	blend := m.Blend(mode)
	t.Position = t.Position.Add(target.Sub(t.Position).Mul(blend))

	if mode == components.Scattered {
		t.Rotation[0] += m.Tumble
	}
	t.Rotation[1] += m.Spin

	t.Scale = rec.Scale
}
