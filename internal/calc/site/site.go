// Package site resolves a design site to its rock acceleration, seismic zone
// and ash-risk flag.
package site

import (
	"fmt"
	"math"
	"strings"

	"nicspectra/internal/calc/ash"
	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/refdata"
)

// Zone is an NSM-22 seismic zone.
type Zone int

const (
	Z1 Zone = iota + 1
	Z2
	Z3
	Z4
)

func (z Zone) String() string {
	if z < Z1 || z > Z4 {
		return fmt.Sprintf("Zone(%d)", int(z))
	}
	return fmt.Sprintf("Z%d", int(z))
}

func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Zone) UnmarshalText(b []byte) error {
	for _, c := range []Zone{Z1, Z2, Z3, Z4} {
		if strings.EqualFold(string(b), c.String()) {
			*z = c
			return nil
		}
	}
	return fmt.Errorf("unknown seismic zone %q", b)
}

// ZoneFor maps a rock acceleration a0 (g) to its zone. Boundary values belong
// to the higher zone.
func ZoneFor(a0 float64) Zone {
	switch {
	case a0 >= 0.315:
		return Z4
	case a0 >= 0.23:
		return Z3
	case a0 >= 0.17:
		return Z2
	default:
		return Z1
	}
}

// Lookup finds a site by name. Case and accents are ignored.
func Lookup(tables *refdata.Tables, name string) (refdata.Site, error) {
	s, ok := tables.Site(name)
	if !ok {
		return refdata.Site{}, calcerr.NotFound("site %q", strings.TrimSpace(name))
	}
	return s, nil
}

// Nearest returns the site closest to (lat, lon) by plain Euclidean distance
// in degrees. Sites without coordinates are skipped; on ties the first site
// in table order wins.
func Nearest(sites []refdata.Site, lat, lon float64) (refdata.Site, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range sites {
		if s.Location == nil {
			continue
		}
		d := math.Hypot(s.Location.Lat-lat, s.Location.Lon-lon)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return refdata.Site{}, calcerr.NotFound("no site with coordinates")
	}
	return sites[best], nil
}

// Resolution is a site together with the values derived from it.
type Resolution struct {
	Site        refdata.Site `json:"site"`
	Zone        Zone         `json:"zone"`
	AshKgM2     float64      `json:"ash_load_kg_m2"`
	AshRiskZone bool         `json:"ash_risk_zone"`
}

func resolve(s refdata.Site) Resolution {
	load, risk := ash.Load(s.Name)
	return Resolution{Site: s, Zone: ZoneFor(s.A0), AshKgM2: load, AshRiskZone: risk}
}

// Resolver answers site queries against a fixed set of tables.
type Resolver struct {
	Tables *refdata.Tables
}

func NewResolver(tables *refdata.Tables) *Resolver {
	return &Resolver{Tables: tables}
}

func (r *Resolver) ByName(name string) (Resolution, error) {
	s, err := Lookup(r.Tables, name)
	if err != nil {
		return Resolution{}, err
	}
	return resolve(s), nil
}

func (r *Resolver) ByPoint(lat, lon float64) (Resolution, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return Resolution{}, calcerr.Validation("coordinates must be finite")
	}
	s, err := Nearest(r.Tables.Sites(), lat, lon)
	if err != nil {
		return Resolution{}, err
	}
	return resolve(s), nil
}

// All resolves every site of the table, in table order.
func (r *Resolver) All() []Resolution {
	sites := r.Tables.Sites()
	out := make([]Resolution, len(sites))
	for i, s := range sites {
		out[i] = resolve(s)
	}
	return out
}
