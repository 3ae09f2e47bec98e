package site

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/refdata"
)

func TestZoneForBoundaries(t *testing.T) {
	cases := []struct {
		a0   float64
		want Zone
	}{
		{0, Z1},
		{0.1699, Z1},
		{0.17, Z2},
		{0.2299, Z2},
		{0.23, Z3},
		{0.3149, Z3},
		{0.315, Z4},
		{0.6, Z4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ZoneFor(tc.a0), "a0=%v", tc.a0)
	}
}

func TestZoneForIsMonotonic(t *testing.T) {
	prev := ZoneFor(0)
	for a0 := 0.0; a0 <= 0.6; a0 += 0.001 {
		z := ZoneFor(a0)
		assert.GreaterOrEqual(t, z, prev, "a0=%v", a0)
		prev = z
	}
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "Z3", Z3.String())
	b, err := json.Marshal(Z4)
	require.NoError(t, err)
	assert.Equal(t, `"Z4"`, string(b))
}

func TestLookup(t *testing.T) {
	tables := refdata.Default()
	s, err := Lookup(tables, "León")
	require.NoError(t, err)
	assert.Equal(t, "LEON", s.Name)

	_, err = Lookup(tables, "ATLANTIS")
	assert.True(t, calcerr.IsNotFound(err))
}

func TestNearest(t *testing.T) {
	sites := []refdata.Site{
		{Name: "NOWHERE", A0: 0.1},
		{Name: "A", A0: 0.2, Location: &refdata.LatLon{Lat: 0, Lon: 0}},
		{Name: "B", A0: 0.3, Location: &refdata.LatLon{Lat: 2, Lon: 0}},
		{Name: "C", A0: 0.4, Location: &refdata.LatLon{Lat: 10, Lon: 10}},
	}

	s, err := Nearest(sites, 0.4, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Name)

	s, err = Nearest(sites, 1.6, 0.1)
	require.NoError(t, err)
	assert.Equal(t, "B", s.Name)

	// equidistant from A and B: first in table order wins
	s, err = Nearest(sites, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Name)

	_, err = Nearest(sites[:1], 0, 0)
	assert.True(t, calcerr.IsNotFound(err))
}

func TestResolver(t *testing.T) {
	r := NewResolver(refdata.Default())

	res, err := r.ByName("managua")
	require.NoError(t, err)
	assert.Equal(t, Z4, res.Zone)
	assert.True(t, res.AshRiskZone)
	assert.Equal(t, 20.0, res.AshKgM2)

	res, err = r.ByPoint(13.09, -86.0)
	require.NoError(t, err)
	assert.Equal(t, "JINOTEGA", res.Site.Name)
	assert.False(t, res.AshRiskZone)

	_, err = r.ByPoint(math.NaN(), 0)
	assert.True(t, calcerr.IsValidation(err))

	assert.Len(t, r.All(), len(refdata.Default().Sites()))
}

func TestHandlerNearest(t *testing.T) {
	h := &Handler{Resolver: NewResolver(refdata.Default())}

	rec := httptest.NewRecorder()
	h.Nearest(rec, httptest.NewRequest(http.MethodGet, "/api/sites/nearest?lat=12.44&lon=-86.88", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var res Resolution
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "LEON", res.Site.Name)

	rec = httptest.NewRecorder()
	h.Nearest(rec, httptest.NewRequest(http.MethodGet, "/api/sites/nearest?lat=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
