package refdata

import (
	"slices"

	"nicspectra/internal/calc/calcerr"
)

// Tables is the immutable set of reference tables. It is safe for concurrent
// use because nothing mutates it after New returns.
type Tables struct {
	sites     []Site
	siteIndex map[string]int
	vs30      []Vs30Site
	vs30Index map[string]int
	systems   map[Category][]System
}

// New indexes the given tables. Names are keyed by their normalized form and
// must be unique; system names must be unique within their category.
func New(sites []Site, vs30 []Vs30Site, systems map[Category][]System) (*Tables, error) {
	t := &Tables{
		sites:     slices.Clone(sites),
		siteIndex: make(map[string]int, len(sites)),
		vs30:      slices.Clone(vs30),
		vs30Index: make(map[string]int, len(vs30)),
		systems:   make(map[Category][]System, len(systems)),
	}
	for i, s := range t.sites {
		key := NormalizeName(s.Name)
		if key == "" {
			return nil, calcerr.Validation("site %d has no name", i+1)
		}
		if _, dup := t.siteIndex[key]; dup {
			return nil, calcerr.Validation("duplicate site %q", s.Name)
		}
		t.sites[i] = s.clone()
		t.siteIndex[key] = i
	}
	for i, v := range t.vs30 {
		key := NormalizeName(v.Name)
		if _, dup := t.vs30Index[key]; dup {
			return nil, calcerr.Validation("duplicate Vs30 site %q", v.Name)
		}
		t.vs30Index[key] = i
	}
	for cat, list := range systems {
		if !cat.Valid() {
			return nil, calcerr.Validation("unknown structural category %q", cat)
		}
		seen := make(map[string]bool, len(list))
		for _, sys := range list {
			if seen[sys.Name] {
				return nil, calcerr.Validation("duplicate system %q in %s", sys.Name, cat)
			}
			seen[sys.Name] = true
		}
		t.systems[cat] = slices.Clone(list)
	}
	return t, nil
}

// Sites returns the site table in its original order.
func (t *Tables) Sites() []Site {
	out := make([]Site, len(t.sites))
	for i, s := range t.sites {
		out[i] = s.clone()
	}
	return out
}

// Site looks a site up by name, ignoring case and accents.
func (t *Tables) Site(name string) (Site, bool) {
	i, ok := t.siteIndex[NormalizeName(name)]
	if !ok {
		return Site{}, false
	}
	return t.sites[i].clone(), true
}

func (t *Tables) Vs30Sites() []Vs30Site {
	return slices.Clone(t.vs30)
}

func (t *Tables) Vs30(name string) (Vs30Site, bool) {
	i, ok := t.vs30Index[NormalizeName(name)]
	if !ok {
		return Vs30Site{}, false
	}
	return t.vs30[i], true
}

func (t *Tables) Systems(cat Category) []System {
	return slices.Clone(t.systems[cat])
}

// System finds a structural system by exact name within a category.
func (t *Tables) System(cat Category, name string) (System, bool) {
	for _, s := range t.systems[cat] {
		if s.Name == name {
			return s, true
		}
	}
	return System{}, false
}

func (t *Tables) systemsCopy() map[Category][]System {
	out := make(map[Category][]System, len(t.systems))
	for k, v := range t.systems {
		out[k] = slices.Clone(v)
	}
	return out
}
