// Package seismic derives the NSM-22 design parameters and spectra for a
// building in Nicaragua.
package seismic

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/site"
	"nicspectra/internal/calc/soil"
	"nicspectra/internal/calc/spectrum"
	"nicspectra/internal/refdata"
)

var validate = validator.New()

type Input struct {
	Site     string          `json:"site" validate:"required_without=Location"`
	Location *refdata.LatLon `json:"location,omitempty" validate:"required_without=Site"`

	// Soil: a direct class wins, then a Managua Vs30 site, then a Vs30 value.
	SoilClass string  `json:"soil_class,omitempty"`
	Vs30Site  string  `json:"vs30_site,omitempty"`
	Vs30      float64 `json:"vs30_m_s,omitempty" validate:"gte=0"`

	Group    ImportanceGroup  `json:"importance_group" validate:"required,oneof=A B C D"`
	Category refdata.Category `json:"structural_category" validate:"required"`
	System   string           `json:"structural_system" validate:"required"`

	Irregularities Irregularities `json:"irregularities"`
}

// Validate checks the shape of the input before any table is consulted.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return calcerr.Validation("invalid fields: %s", strings.Join(fields, ", "))
		}
		return calcerr.Wrap(calcerr.ErrValidation, err, "invalid input")
	}
	return nil
}

// DesignParameters are the scalar results shown on the dashboard. A0 is the
// design acceleration a0·Fas·I; accelerations in g, periods in seconds.
type DesignParameters struct {
	RockA0 float64 `json:"a0_g"`
	Fas    float64 `json:"fas"`
	I      float64 `json:"importance_factor"`
	A0     float64 `json:"design_a0_g"`
	R      float64 `json:"r"`
	Omega  float64 `json:"omega"`
	Cd     float64 `json:"cd"`
	PhiP   float64 `json:"phi_p"`
	PhiE   float64 `json:"phi_e"`
	R0     float64 `json:"r0"`
	FsTb   float64 `json:"fs_tb"`
	FsTc   float64 `json:"fs_tc"`
	Tb     float64 `json:"tb_s"`
	Tc     float64 `json:"tc_s"`
	Td     float64 `json:"td_s"`
	Beta   float64 `json:"beta"`
	P      float64 `json:"p"`
	Q      float64 `json:"q"`
}

type SoilSource string

const (
	SoilDirect   SoilSource = "direct"
	SoilVs30Site SoilSource = "vs30_site"
	SoilVs30     SoilSource = "vs30"
)

type Result struct {
	Site       site.Resolution  `json:"site"`
	Soil       soil.Class       `json:"soil_class"`
	SoilSource SoilSource       `json:"soil_source"`
	Vs30       float64          `json:"vs30_m_s,omitempty"`
	Group      ImportanceGroup  `json:"importance_group"`
	GroupLabel string           `json:"importance_label"`
	Category   refdata.Category `json:"structural_category"`
	System     refdata.System   `json:"structural_system"`
	CDS        DesignCategory   `json:"design_category"`
	Plan       PlanFactors      `json:"plan_irregularity"`
	Elevation  ElevationFactors `json:"elevation_irregularity"`
	Params     DesignParameters `json:"params"`
	Spectrum   spectrum.Curve   `json:"spectrum"`
}

// ArtifactName is the base file name for exports of this result.
func (r Result) ArtifactName() string {
	return "NSM22_" + strings.ReplaceAll(r.Site.Site.Name, " ", "_") + "_Suelo" + string(r.Soil)
}

// Engine runs the seismic pipeline over read-only reference tables. It holds
// no mutable state and may be shared between requests.
type Engine struct {
	Tables   *refdata.Tables
	resolver *site.Resolver
}

func NewEngine(tables *refdata.Tables) *Engine {
	return &Engine{Tables: tables, resolver: site.NewResolver(tables)}
}

func (e *Engine) resolveSite(in Input) (site.Resolution, error) {
	if strings.TrimSpace(in.Site) != "" {
		return e.resolver.ByName(in.Site)
	}
	if in.Location == nil {
		return site.Resolution{}, calcerr.Validation("site name or location is required")
	}
	return e.resolver.ByPoint(in.Location.Lat, in.Location.Lon)
}

func (e *Engine) resolveSoil(in Input) (soil.Class, SoilSource, float64, error) {
	switch {
	case strings.TrimSpace(in.SoilClass) != "":
		c, err := soil.Parse(in.SoilClass)
		return c, SoilDirect, 0, err
	case strings.TrimSpace(in.Vs30Site) != "":
		v, ok := e.Tables.Vs30(in.Vs30Site)
		if !ok {
			return "", "", 0, calcerr.NotFound("Vs30 site %q", strings.TrimSpace(in.Vs30Site))
		}
		return soil.Classify(v.Vs30), SoilVs30Site, v.Vs30, nil
	case in.Vs30 > 0:
		return soil.Classify(in.Vs30), SoilVs30, in.Vs30, nil
	default:
		return "", "", 0, calcerr.Validation("soil class, Vs30 site or a positive Vs30 is required")
	}
}

// Calculate evaluates the full pipeline. Any error aborts the calculation;
// in particular a prohibited irregularity stops it before the spectrum.
func (e *Engine) Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	res, err := e.resolveSite(in)
	if err != nil {
		return Result{}, err
	}
	class, source, vs30, err := e.resolveSoil(in)
	if err != nil {
		return Result{}, err
	}
	if !in.Category.Valid() {
		return Result{}, calcerr.NotFound("structural category %q", in.Category)
	}
	sys, ok := e.Tables.System(in.Category, in.System)
	if !ok {
		return Result{}, calcerr.NotFound("structural system %q in %s", in.System, in.Category)
	}

	a0 := res.Site.A0
	cds := Category(a0, in.Group.Tier())
	irr := in.Irregularities
	plan, err := PlanIrregularity(irr.Torsion, irr.ReentrantCorner, irr.Diaphragm, irr.NonParallelAxes)
	if err != nil {
		return Result{}, err
	}
	elev, err := ElevationIrregularity(irr.SoftStory, irr.WeakStory, irr.Mass, irr.Geometry, cds)
	if err != nil {
		return Result{}, err
	}
	r0 := ReducedCoefficient(sys.R, plan.PhiP, elev.PhiE)
	if !(r0 > 0) {
		return Result{}, calcerr.Degenerate("reduced coefficient R0 = %g is not positive (R = %g)", r0, sys.R)
	}

	fas := ZoneFactor(res.Zone, class)
	fsTb, fsTc := SpectralAdjustment(class)
	importance := in.Group.Factor()
	p := DesignParameters{
		RockA0: a0,
		Fas:    fas,
		I:      importance,
		A0:     a0 * fas * importance,
		R:      sys.R,
		Omega:  sys.Omega,
		Cd:     sys.Cd,
		PhiP:   plan.PhiP,
		PhiE:   elev.PhiE,
		R0:     r0,
		FsTb:   fsTb,
		FsTc:   fsTc,
		Tb:     fsTb * BaseTb,
		Tc:     fsTc * BaseTc,
		Td:     BaseTd,
		Beta:   spectrum.DefaultBeta,
		P:      spectrum.DefaultP,
		Q:      spectrum.DefaultQ,
	}
	curve, err := spectrum.Generate(spectrum.NewParams(p.A0, p.R0, p.Tb, p.Tc, p.Td))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Site:       res,
		Soil:       class,
		SoilSource: source,
		Vs30:       vs30,
		Group:      in.Group,
		GroupLabel: in.Group.Label(),
		Category:   in.Category,
		System:     sys,
		CDS:        cds,
		Plan:       plan,
		Elevation:  elev,
		Params:     p,
		Spectrum:   curve,
	}, nil
}
