package seismic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/site"
	"nicspectra/internal/calc/soil"
	"nicspectra/internal/refdata"
)

const bearingWall = "Muros de cortante especiales de concreto reforzado"

func managuaInput() Input {
	return Input{
		Site:     "MANAGUA",
		Vs30:     400,
		Group:    GroupC,
		Category: refdata.CategoryBearingWall,
		System:   bearingWall,
	}
}

func TestZoneFactorTable(t *testing.T) {
	assert.Equal(t, 1.3, ZoneFactor(site.Z4, soil.C))
	assert.Equal(t, 2.2, ZoneFactor(site.Z1, soil.E))
	assert.Equal(t, 1.5, ZoneFactor(site.Z3, soil.D))
	for _, z := range []site.Zone{site.Z1, site.Z2, site.Z3, site.Z4} {
		for _, c := range soil.Classes {
			_, ok := fasTable[zoneSoil{z, c}]
			assert.True(t, ok, "%s/%s", z, c)
		}
	}
	assert.Equal(t, 1.0, ZoneFactor(site.Zone(9), soil.C))
}

func TestSpectralAdjustment(t *testing.T) {
	cases := map[soil.Class][2]float64{
		soil.A: {1, 5.0 / 6},
		soil.B: {1, 1},
		soil.C: {1, 4.0 / 3},
		soil.D: {2, 5.0 / 3},
		soil.E: {2, 5.0 / 3},
	}
	for c, want := range cases {
		tb, tc := SpectralAdjustment(c)
		assert.InDelta(t, want[0], tb, 1e-12, c)
		assert.InDelta(t, want[1], tc, 1e-12, c)
	}
}

func TestImportanceGroups(t *testing.T) {
	assert.Equal(t, 1.65, GroupA.Factor())
	assert.Equal(t, 1.30, GroupB.Factor())
	assert.Equal(t, 1.00, GroupC.Factor())
	assert.Equal(t, 0.75, GroupD.Factor())
	assert.Equal(t, HighRisk, GroupA.Tier())
	assert.Equal(t, HighRisk, GroupB.Tier())
	assert.Equal(t, LowRisk, GroupC.Tier())
	assert.Equal(t, LowRisk, GroupD.Tier())
	assert.Contains(t, GroupA.Label(), "(IV)")
	assert.False(t, ImportanceGroup("Z").Valid())
}

func TestCategoryBands(t *testing.T) {
	cases := []struct {
		a0   float64
		low  DesignCategory
		high DesignCategory
	}{
		{0.05, CDSA, CDSB},
		{0.10, CDSB, CDSC},
		{0.149, CDSB, CDSC},
		{0.15, CDSC, CDSD},
		{0.299, CDSC, CDSD},
		{0.30, CDSD, CDSD},
		{0.45, CDSD, CDSD},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.low, Category(tc.a0, LowRisk), "a0=%v low", tc.a0)
		assert.Equal(t, tc.high, Category(tc.a0, HighRisk), "a0=%v high", tc.a0)
	}
}

func TestCategoryMonotonic(t *testing.T) {
	prevLow, prevHigh := Category(0, LowRisk), Category(0, HighRisk)
	for a0 := 0.0; a0 <= 0.6; a0 += 0.0025 {
		low, high := Category(a0, LowRisk), Category(a0, HighRisk)
		assert.GreaterOrEqual(t, low, prevLow)
		assert.GreaterOrEqual(t, high, prevHigh)
		assert.GreaterOrEqual(t, high, low, "a0=%v", a0)
		prevLow, prevHigh = low, high
	}
}

func TestPlanIrregularity(t *testing.T) {
	f, err := PlanIrregularity(None, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, PlanFactors{PhiPA: 1, PhiPB: 1, PhiP: 1}, f)

	f, err = PlanIrregularity("", false, false, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.PhiP)

	f, err = PlanIrregularity(Extreme, true, true, false)
	require.NoError(t, err)
	assert.Equal(t, 0.8, f.PhiPA) // min, not product

	f, err = PlanIrregularity(Standard, false, true, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, f.PhiP, 1e-12)

	_, err = PlanIrregularity("wobbly", false, false, false)
	assert.True(t, calcerr.IsValidation(err))
}

func TestElevationIrregularityFactors(t *testing.T) {
	f, err := ElevationIrregularity(None, None, false, false, CDSD)
	require.NoError(t, err)
	assert.Equal(t, ElevationFactors{PhiEA: 1, PhiEB: 1, PhiE: 1}, f)

	f, err = ElevationIrregularity(Extreme, Standard, false, false, CDSA)
	require.NoError(t, err)
	assert.Equal(t, 0.7, f.PhiEA)

	f, err = ElevationIrregularity(None, Extreme, true, true, CDSB)
	require.NoError(t, err)
	assert.Equal(t, 0.6, f.PhiEA)
	assert.Equal(t, 0.9, f.PhiEB)
	assert.InDelta(t, 0.54, f.PhiE, 1e-12)

	f, err = ElevationIrregularity(Standard, Standard, true, false, CDSD)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, f.PhiE, 1e-12)
}

// Prohibition is raised iff a soft or weak story is extreme and CDS is C or D.
func TestElevationProhibitionMatrix(t *testing.T) {
	for _, story := range []string{"soft story", "weak story"} {
		for _, extreme := range []bool{true, false} {
			for _, cds := range []DesignCategory{CDSA, CDSB, CDSC, CDSD} {
				level := Standard
				if extreme {
					level = Extreme
				}
				soft, weak := None, None
				if story == "soft story" {
					soft = level
				} else {
					weak = level
				}

				_, err := ElevationIrregularity(soft, weak, false, false, cds)
				want := extreme && (cds == CDSC || cds == CDSD)
				if !want {
					assert.NoError(t, err, "%s extreme=%v cds=%s", story, extreme, cds)
					continue
				}
				var pe *calcerr.ProhibitionError
				require.True(t, errors.As(err, &pe), "%s extreme=%v cds=%s", story, extreme, cds)
				assert.Equal(t, story, pe.Irregularity)
				assert.Equal(t, string(cds), pe.Category)
			}
		}
	}
}

func TestElevationProhibitionSoftBeforeWeak(t *testing.T) {
	for _, cds := range []DesignCategory{CDSC, CDSD} {
		_, err := ElevationIrregularity(Extreme, Extreme, false, false, cds)
		var pe *calcerr.ProhibitionError
		require.True(t, errors.As(err, &pe), "cds=%s", cds)
		assert.Equal(t, "soft story", pe.Irregularity)
		assert.Equal(t, string(cds), pe.Category)
	}

	f, err := ElevationIrregularity(Extreme, Extreme, false, false, CDSB)
	require.NoError(t, err)
	assert.Less(t, f.PhiE, 1.0)
}

func TestCalculateManaguaScenario(t *testing.T) {
	e := NewEngine(refdata.Default())
	res, err := e.Calculate(managuaInput())
	require.NoError(t, err)

	assert.Equal(t, site.Z4, res.Site.Zone)
	assert.Equal(t, soil.C, res.Soil)
	assert.Equal(t, SoilVs30, res.SoilSource)
	assert.Equal(t, CDSD, res.CDS)
	p := res.Params
	assert.Equal(t, 1.0, p.I)
	assert.Equal(t, 1.3, p.Fas)
	assert.Equal(t, 1.0, p.PhiP)
	assert.Equal(t, 1.0, p.PhiE)
	assert.Equal(t, 5.0, p.R0)
	assert.InDelta(t, 0.5031, p.A0, 1e-12)
	assert.InDelta(t, 0.05, p.Tb, 1e-12)
	assert.InDelta(t, 0.4, p.Tc, 1e-12)
	assert.Equal(t, 2.0, p.Td)
	assert.Equal(t, 2.5, p.Omega)
	assert.Len(t, res.Spectrum.Points, 401)
	assert.True(t, res.Site.AshRiskZone)
	assert.Equal(t, "NSM22_MANAGUA_SueloC", res.ArtifactName())
}

func TestCalculateSoilSources(t *testing.T) {
	e := NewEngine(refdata.Default())

	in := managuaInput()
	in.SoilClass = "e"
	res, err := e.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, soil.E, res.Soil)
	assert.Equal(t, SoilDirect, res.SoilSource)

	in = managuaInput()
	in.Vs30 = 0
	in.Vs30Site = "MERCADO ORIENTAL"
	res, err = e.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, soil.D, res.Soil)
	assert.Equal(t, 246.0, res.Vs30)

	in.Vs30Site = "LUNA"
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsNotFound(err))

	in = managuaInput()
	in.Vs30 = 0
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsValidation(err))
}

func TestCalculateByLocation(t *testing.T) {
	e := NewEngine(refdata.Default())
	in := managuaInput()
	in.Site = ""
	in.Location = &refdata.LatLon{Lat: 11.94, Lon: -85.95}
	res, err := e.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, "GRANADA", res.Site.Site.Name)
}

func TestCalculateErrors(t *testing.T) {
	e := NewEngine(refdata.Default())

	in := managuaInput()
	in.Site = "ATLANTIS"
	_, err := e.Calculate(in)
	assert.True(t, calcerr.IsNotFound(err))

	in = managuaInput()
	in.System = "Castillo de naipes"
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsNotFound(err))

	in = managuaInput()
	in.Category = "igloo"
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsNotFound(err))

	in = managuaInput()
	in.Site = ""
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsValidation(err))

	in = managuaInput()
	in.Site = "   "
	in.Location = nil
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsValidation(err))

	in = managuaInput()
	in.Group = "Z"
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsValidation(err))

	in = managuaInput()
	in.Irregularities.SoftStory = "sideways"
	_, err = e.Calculate(in)
	assert.True(t, calcerr.IsValidation(err))
}

func TestCalculateProhibitionAbortsPipeline(t *testing.T) {
	e := NewEngine(refdata.Default())
	in := managuaInput()
	in.Irregularities.WeakStory = Extreme

	res, err := e.Calculate(in)
	require.Error(t, err)
	assert.True(t, calcerr.IsCodeProhibition(err))
	assert.Empty(t, res.Spectrum.Points)

	// same selection is allowed where the category is B
	in.Site = "PUERTO CABEZAS"
	res, err = e.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, CDSB, res.CDS)
	assert.Equal(t, 0.6, res.Params.PhiE)
	assert.InDelta(t, 3.0, res.Params.R0, 1e-12)
}

func TestCalculateRejectsDegenerateR0(t *testing.T) {
	systems := map[refdata.Category][]refdata.System{
		refdata.CategoryCantilever: {{Name: "Sin resistencia", R: 0, Omega: 1, Cd: 1}},
	}
	tables, err := refdata.New(refdata.Default().Sites(), nil, systems)
	require.NoError(t, err)

	in := managuaInput()
	in.Category = refdata.CategoryCantilever
	in.System = "Sin resistencia"
	_, err = NewEngine(tables).Calculate(in)
	assert.True(t, calcerr.IsDegenerate(err))
}
