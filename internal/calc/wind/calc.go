// Package wind computes RNC-07 static wind loads per floor.
package wind

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"nicspectra/internal/calc/calcerr"
)

var validate = validator.New()

// Input describes a rectangular building. WidthM (B) faces the wind for Fx,
// DepthM (L) for Fy. Heights are story heights in metres, bottom to top.
type Input struct {
	WidthM     float64    `json:"width_m" validate:"gt=0"`
	DepthM     float64    `json:"depth_m" validate:"gt=0"`
	Heights    []float64  `json:"heights_m" validate:"required,min=1,dive,gt=0"`
	Zone       Zone       `json:"zone" validate:"min=1,max=3"`
	Group      Group      `json:"group" validate:"oneof=A B"`
	Roughness  Roughness  `json:"roughness" validate:"oneof=R1 R2 R3 R4"`
	Topography Topography `json:"topography" validate:"oneof=T1 T2 T3 T4 T5"`
}

func (in Input) Validate() error {
	if len(in.Heights) == 0 {
		return calcerr.Validation("at least one story height is required")
	}
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

// ParseHeights reads a comma separated list such as "4, 3.5,3.5". Blank
// entries are skipped; a decimal comma is not accepted here since the comma
// is the separator.
func ParseHeights(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, calcerr.Validation("story height %q is not a number", part)
		}
		if h <= 0 {
			return nil, calcerr.Validation("story height %q must be positive", part)
		}
		out = append(out, h)
	}
	if len(out) == 0 {
		return nil, calcerr.Validation("at least one story height is required")
	}
	return out, nil
}

// Row is one floor. Pressures in kg/m², forces in Ton.
type Row struct {
	Level    int     `json:"level"`
	ZM       float64 `json:"z_m"`
	TribM    float64 `json:"tributary_m"`
	Fa       float64 `json:"fa"`
	VdMS     float64 `json:"vd_m_s"`
	QNetKgM2 float64 `json:"q_net_kg_m2"`
	FxTon    float64 `json:"fx_ton"`
	FyTon    float64 `json:"fy_ton"`
}

type Result struct {
	Input     Input           `json:"input"`
	HeightM   float64         `json:"total_height_m"`
	VrMS      float64         `json:"vr_m_s"`
	Ftr       float64         `json:"ftr"`
	Roughness RoughnessParams `json:"roughness"`
	// Leeward pressure, constant over the height of the building.
	QLeewardKgM2 float64 `json:"q_leeward_kg_m2"`
	Rows         []Row   `json:"rows"`
	SumFxTon     float64 `json:"sum_fx_ton"`
	SumFyTon     float64 `json:"sum_fy_ton"`
}

// ExposureFactor is Fa at height z (m) for the given roughness parameters.
// z is clamped to [10, δ].
func ExposureFactor(z float64, p RoughnessParams) float64 {
	zc := math.Max(referenceHeight, math.Min(z, p.Delta))
	if zc > referenceHeight {
		return math.Pow(zc/referenceHeight, p.Alpha)
	}
	return 1.0
}

// Pressure is K·Cp·Vd² in kg/m² for a speed in m/s.
func Pressure(cp, vd float64) float64 {
	return PressureK * cp * vd * vd
}

// Calculate evaluates the per-floor loads. It is a pure function of its input.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	vr, ok := RegionalSpeed(in.Zone, in.Group)
	if !ok {
		return Result{}, calcerr.InvalidCombination("no regional speed for zone %d group %s", in.Zone, in.Group)
	}
	rough, ok := RoughnessFor(in.Roughness)
	if !ok {
		return Result{}, calcerr.Validation("unknown roughness class %q", in.Roughness)
	}
	ftr, ok := TopographicFactor(in.Topography, in.Roughness)
	if !ok {
		return Result{}, calcerr.InvalidCombination("no topographic factor for %s with %s", in.Topography, in.Roughness)
	}

	heights := append([]float64(nil), in.Heights...)
	cumulative := make([]float64, len(heights))
	var total float64
	for i, h := range heights {
		total += h
		cumulative[i] = total
	}

	qLee := Pressure(CpLeeward, vr*ExposureFactor(total, rough)*ftr)

	res := Result{
		Input:        in,
		HeightM:      total,
		VrMS:         vr,
		Ftr:          ftr,
		Roughness:    rough,
		QLeewardKgM2: qLee,
		Rows:         make([]Row, 0, len(heights)),
	}
	res.Input.Heights = heights

	for i, z := range cumulative {
		trib := heights[i] / 2
		if i < len(heights)-1 {
			trib += heights[i+1] / 2
		}
		fa := ExposureFactor(z, rough)
		vd := vr * fa * ftr
		q := Pressure(CpWindward, vd) + qLee
		row := Row{
			Level:    i + 1,
			ZM:       z,
			TribM:    trib,
			Fa:       fa,
			VdMS:     vd,
			QNetKgM2: q,
			FxTon:    q * in.WidthM * trib / 1000,
			FyTon:    q * in.DepthM * trib / 1000,
		}
		res.SumFxTon += row.FxTon
		res.SumFyTon += row.FyTon
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
