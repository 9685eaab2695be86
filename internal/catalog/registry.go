// Package catalog maps the numbered animations of a show to the animations that play them.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/thomasin/tylers-leds/internal/strip"
)

type Entry struct {
	ID        int
	Name      string
	Animation strip.Animation
}

func (e Entry) String() string {
	return fmt.Sprintf("%3d %s", e.ID, e.Name)
}

// Registry is built once at startup and never changes afterwards.
type Registry struct {
	entries map[int]Entry
	ids     []int
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[int]Entry, len(entries))}
	for _, e := range entries {
		if e.Animation == nil {
			return nil, fmt.Errorf("animation %d has nothing to play", e.ID)
		}
		if _, ok := r.entries[e.ID]; ok {
			return nil, fmt.Errorf("animation %d is defined more than once", e.ID)
		}
		r.entries[e.ID] = e
		r.ids = append(r.ids, e.ID)
	}
	slices.Sort(r.ids)

	return r, nil
}

func (r *Registry) Get(id int) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// IDs returns the known ids in ascending order.
func (r *Registry) IDs() []int {
	return slices.Clone(r.ids)
}

func (r *Registry) Len() int {
	return len(r.ids)
}

// Picker picks random entries, trying not to pick the same one twice in a row.
type Picker struct {
	registry *Registry
	rnd      *rand.Rand
	last     int
	picked   bool
}

func NewPicker(r *Registry, rnd *rand.Rand) *Picker {
	return &Picker{registry: r, rnd: rnd}
}

func (p *Picker) Next() (Entry, bool) {
	if p.registry.Len() == 0 {
		return Entry{}, false
	}

	var id int
	for i := 0; i < 5; i++ {
		id = p.registry.ids[p.rnd.IntN(len(p.registry.ids))]
		if !p.picked || id != p.last {
			break
		}
	}
	p.last, p.picked = id, true

	return p.registry.entries[id], true
}
