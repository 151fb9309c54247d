// Package shapekey turns slider values into morph target influences and
// writes them onto the meshes of a model graph.
//
// Binding mutates mesh influence slices in place and is not safe for
// concurrent use on the same model. Callers serialize binds per model.
package shapekey

import (
	"math"

	"fitmorph/internal/gender"
	"fitmorph/internal/slider"
)

// Influences maps morph target name to influence.
type Influences map[string]float64

// Observer receives every computed target, in processing order.
type Observer func(target string, influence float64)

// MorphTarget is a mesh node carrying a morph dictionary and a parallel
// influence slice. Either may be nil for nodes without morphs.
type MorphTarget interface {
	MorphDictionary() map[string]int
	MorphInfluences() []float32
}

// Updatable nodes are told when their influences changed.
type Updatable interface {
	MarkMorphsDirty()
}

// Model is any graph the binder can walk. Visited nodes that do not
// implement MorphTarget are skipped.
type Model interface {
	Traverse(fn func(node any))
}

// Binder computes and applies influences. The zero value is ready to use.
type Binder struct {
	Observer Observer
}

// Compute builds a fresh influence map for cfg. Every target named by cfg
// is present. Pure apart from Observer calls.
func (b Binder) Compute(cfg gender.Config, values slider.Values) Influences {
	out := make(Influences)
	rank := make(map[string]int)

	set := func(name string, v float64, prio int) {
		if prev, ok := rank[name]; ok && prev > prio {
			return
		}
		rank[name] = prio
		out[name] = v
	}

	for _, g := range cfg.Groups {
		for _, entry := range g.Entries {
			raw := values.Normalized(entry.SliderKey())
			switch e := entry.(type) {
			case gender.Enum:
				if len(e.Keys) == 0 {
					continue
				}
				idx := enumIndex(raw, len(e.Keys))
				for i, k := range e.Keys {
					v := 0.0
					if i == idx {
						v = 1
					}
					set(k, v, e.Priority)
				}
			case gender.Continuous:
				v := raw
				if e.Min != nil && v < *e.Min {
					v = *e.Min
				}
				if e.Max != nil && v > *e.Max {
					v = *e.Max
				}
				for _, k := range e.Keys {
					set(k, v, e.Priority)
				}
			}
		}
	}

	if b.Observer != nil {
		for _, name := range cfg.Targets() {
			b.Observer(name, out[name])
		}
	}
	return out
}

// Bind resolves g, computes the influences and applies them to model.
// A nil model, or one without morph-bearing nodes, yields an empty map and
// no mutations. Use Compute for the map alone.
func (b Binder) Bind(model Model, values slider.Values, g gender.Gender) (Influences, error) {
	if !hasMorphs(model) {
		return Influences{}, nil
	}
	cfg, err := gender.For(g)
	if err != nil {
		return nil, err
	}
	inf := b.Compute(cfg, values)
	Apply(model, inf)
	return inf, nil
}

// hasMorphs reports whether any node under model exposes both a dictionary
// and an influence slice.
func hasMorphs(model Model) bool {
	if model == nil {
		return false
	}
	found := false
	model.Traverse(func(node any) {
		if found {
			return
		}
		if mt, ok := node.(MorphTarget); ok && mt.MorphDictionary() != nil && mt.MorphInfluences() != nil {
			found = true
		}
	})
	return found
}

// Apply resets every influence slot of every morph-bearing node to 0, then
// writes the slots whose names appear in inf. Names a mesh lacks are skipped.
// It returns the number of nodes written.
func Apply(model Model, inf Influences) int {
	if model == nil {
		return 0
	}
	written := 0
	model.Traverse(func(node any) {
		mt, ok := node.(MorphTarget)
		if !ok {
			return
		}
		dict := mt.MorphDictionary()
		slots := mt.MorphInfluences()
		if dict == nil || slots == nil {
			return
		}
		for i := range slots {
			slots[i] = 0
		}
		for name, idx := range dict {
			v, ok := inf[name]
			if !ok || idx < 0 || idx >= len(slots) {
				continue
			}
			slots[idx] = float32(v)
		}
		if u, ok := node.(Updatable); ok {
			u.MarkMorphsDirty()
		}
		written++
	})
	return written
}

// enumIndex rounds v and clamps it into [0, n-1].
func enumIndex(v float64, n int) int {
	r := math.Round(v)
	if r <= 0 {
		return 0
	}
	if r >= float64(n-1) {
		return n - 1
	}
	return int(r)
}
