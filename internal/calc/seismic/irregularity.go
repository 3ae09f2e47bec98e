package seismic

import (
	"math"

	"nicspectra/internal/calc/calcerr"
)

// Level grades an irregularity.
type Level string

const (
	None     Level = "none"
	Standard Level = "standard"
	Extreme  Level = "extreme"
)

func (l Level) orNone() Level {
	if l == "" {
		return None
	}
	return l
}

var (
	torsionFactors = map[Level]float64{None: 1.0, Standard: 0.9, Extreme: 0.8}
	softFactors    = map[Level]float64{None: 1.0, Standard: 0.8, Extreme: 0.7}
	weakFactors    = map[Level]float64{None: 1.0, Standard: 0.8, Extreme: 0.6}
)

const (
	cornerFactor      = 0.9
	diaphragmFactor   = 0.9
	nonParallelFactor = 0.8
	massFactor        = 0.9
	geometryFactor    = 0.9
)

func flag(on bool, factor float64) float64 {
	if on {
		return factor
	}
	return 1.0
}

func levelFactor(table map[Level]float64, l Level, what string) (float64, error) {
	f, ok := table[l.orNone()]
	if !ok {
		return 0, calcerr.Validation("unknown %s level %q", what, l)
	}
	return f, nil
}

// Irregularities are the user's irregularity selections. Empty levels mean none.
type Irregularities struct {
	Torsion         Level `json:"torsion" validate:"omitempty,oneof=none standard extreme"`
	ReentrantCorner bool  `json:"reentrant_corner"`
	Diaphragm       bool  `json:"diaphragm_discontinuity"`
	NonParallelAxes bool  `json:"non_parallel_axes"`
	SoftStory       Level `json:"soft_story" validate:"omitempty,oneof=none standard extreme"`
	WeakStory       Level `json:"weak_story" validate:"omitempty,oneof=none standard extreme"`
	Mass            bool  `json:"mass_distribution"`
	Geometry        bool  `json:"geometric"`
}

type PlanFactors struct {
	PhiPA float64 `json:"phi_pa"`
	PhiPB float64 `json:"phi_pb"`
	PhiP  float64 `json:"phi_p"`
}

// PlanIrregularity computes Φp = Φpa·Φpb, where Φpa is the smallest of the
// torsion, re-entrant corner and diaphragm factors.
func PlanIrregularity(torsion Level, corner, diaphragm, nonParallel bool) (PlanFactors, error) {
	ft, err := levelFactor(torsionFactors, torsion, "torsion")
	if err != nil {
		return PlanFactors{}, err
	}
	pa := math.Min(ft, math.Min(flag(corner, cornerFactor), flag(diaphragm, diaphragmFactor)))
	pb := flag(nonParallel, nonParallelFactor)
	return PlanFactors{PhiPA: pa, PhiPB: pb, PhiP: pa * pb}, nil
}

type ElevationFactors struct {
	PhiEA float64 `json:"phi_ea"`
	PhiEB float64 `json:"phi_eb"`
	PhiE  float64 `json:"phi_e"`
}

// ElevationIrregularity computes Φe = Φea·Φeb. An extreme soft or weak story
// is prohibited in categories C and D and aborts with a ProhibitionError.
func ElevationIrregularity(soft, weak Level, mass, geometry bool, cds DesignCategory) (ElevationFactors, error) {
	fs, err := levelFactor(softFactors, soft, "soft story")
	if err != nil {
		return ElevationFactors{}, err
	}
	fw, err := levelFactor(weakFactors, weak, "weak story")
	if err != nil {
		return ElevationFactors{}, err
	}
	if cds.restrictsExtremeStories() {
		if soft == Extreme {
			return ElevationFactors{}, &calcerr.ProhibitionError{Irregularity: "soft story", Level: string(Extreme), Category: string(cds)}
		}
		if weak == Extreme {
			return ElevationFactors{}, &calcerr.ProhibitionError{Irregularity: "weak story", Level: string(Extreme), Category: string(cds)}
		}
	}
	ea := math.Min(fs, fw)
	eb := math.Min(flag(mass, massFactor), flag(geometry, geometryFactor))
	return ElevationFactors{PhiEA: ea, PhiEB: eb, PhiE: ea * eb}, nil
}

// ReducedCoefficient returns R0 = R·Φp·Φe.
func ReducedCoefficient(r, phiP, phiE float64) float64 {
	return r * phiP * phiE
}
