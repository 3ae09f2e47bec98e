// Package spectrum evaluates the NSM-22 elastic and design acceleration
// spectra. Accelerations are in g, periods in seconds.
package spectrum

import (
	"iter"
	"math"

	"nicspectra/internal/calc/calcerr"
)

const (
	DefaultBeta    = 2.4
	DefaultP       = 0.8
	DefaultQ       = 2.0
	DefaultTMax    = 4.0
	DefaultSamples = 401
)

type Params struct {
	A0      float64 `json:"a0_g"`
	R0      float64 `json:"r0"`
	Tb      float64 `json:"tb_s"`
	Tc      float64 `json:"tc_s"`
	Td      float64 `json:"td_s"`
	Beta    float64 `json:"beta"`
	P       float64 `json:"p"`
	Q       float64 `json:"q"`
	TMax    float64 `json:"t_max_s"`
	Samples int     `json:"samples"`
}

// NewParams fills the code defaults for beta, p, q and the sampling grid.
func NewParams(a0, r0, tb, tc, td float64) Params {
	return Params{
		A0: a0, R0: r0, Tb: tb, Tc: tc, Td: td,
		Beta: DefaultBeta, P: DefaultP, Q: DefaultQ,
		TMax: DefaultTMax, Samples: DefaultSamples,
	}
}

func (p Params) Validate() error {
	switch {
	case !(p.Tb > 0 && p.Tb <= p.Tc && p.Tc <= p.Td):
		return calcerr.Validation("corner periods must satisfy 0 < Tb <= Tc <= Td (got %g, %g, %g)", p.Tb, p.Tc, p.Td)
	case p.A0 < 0 || math.IsNaN(p.A0):
		return calcerr.Validation("A0 must be non-negative")
	case p.TMax <= 0:
		return calcerr.Validation("T max must be positive")
	case p.Samples < 2:
		return calcerr.Validation("at least two samples are required")
	}
	return nil
}

// Degenerate reports whether R0 cannot reduce the spectrum.
func (p Params) Degenerate() bool {
	return !(p.R0 > 0)
}

// Elastic returns the elastic spectral acceleration at period t.
func Elastic(p Params, t float64) float64 {
	switch {
	case t < p.Tb:
		return p.A0 * (1 + (t/p.Tb)*(p.Beta-1))
	case t < p.Tc:
		return p.A0 * p.Beta
	case t < p.Td:
		return p.A0 * p.Beta * math.Pow(p.Tc/t, p.P)
	default:
		return p.A0 * p.Beta * math.Pow(p.Tc/p.Td, p.P) * math.Pow(p.Td/t, p.Q)
	}
}

// Design returns the reduced spectral acceleration at period t. The ascending
// branch rises from A0 towards A0·β/R0 rather than dividing the elastic value.
// With a degenerate R0 the elastic value is returned unchanged.
func Design(p Params, t float64) float64 {
	if p.Degenerate() {
		return Elastic(p, t)
	}
	if t < p.Tb {
		return (p.A0*t/p.Tb)*(p.Beta/p.R0-1) + p.A0
	}
	return Elastic(p, t) / p.R0
}

// Point is one sample of the spectrum.
type Point struct {
	T       float64 `json:"period_s"`
	Elastic float64 `json:"elastic_g"`
	Design  float64 `json:"design_g"`
}

// Samples yields the curve lazily on an even grid over [0, TMax]. The
// sequence can be ranged over any number of times.
func Samples(p Params) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		last := float64(p.Samples - 1)
		for i := 0; i < p.Samples; i++ {
			t := p.TMax * float64(i) / last
			if !yield(Point{T: t, Elastic: Elastic(p, t), Design: Design(p, t)}) {
				return
			}
		}
	}
}

type Curve struct {
	Params     Params  `json:"params"`
	Degenerate bool    `json:"degenerate"`
	Points     []Point `json:"points"`
}

// Generate samples the full curve. A degenerate R0 is not an error here: the
// curve is returned with Degenerate set and design equal to elastic, so the
// caller decides whether to reject it.
func Generate(p Params) (Curve, error) {
	if err := p.Validate(); err != nil {
		return Curve{}, err
	}
	c := Curve{Params: p, Degenerate: p.Degenerate(), Points: make([]Point, 0, p.Samples)}
	for pt := range Samples(p) {
		c.Points = append(c.Points, pt)
	}
	return c, nil
}

// Peak returns the largest elastic and design values of the curve.
func (c Curve) Peak() (elastic, design float64) {
	for _, pt := range c.Points {
		elastic = math.Max(elastic, pt.Elastic)
		design = math.Max(design, pt.Design)
	}
	return elastic, design
}
