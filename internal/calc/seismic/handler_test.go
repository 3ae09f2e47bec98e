package seismic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/refdata"
)

func newHandler() *Handler {
	return &Handler{Engine: NewEngine(refdata.Default())}
}

func post(t *testing.T, fn http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

const managuaBody = `{"site":"managua","vs30_m_s":400,"importance_group":"C","structural_category":"bearing-wall","structural_system":"` + bearingWall + `"}`

func TestHandlerCalc(t *testing.T) {
	rec := post(t, newHandler().Calc, managuaBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "MANAGUA", res.Site.Site.Name)
	assert.Equal(t, CDSD, res.CDS)
	assert.InDelta(t, 0.5031, res.Params.A0, 1e-12)
	assert.Len(t, res.Spectrum.Points, 401)
}

func TestHandlerStatusCodes(t *testing.T) {
	h := newHandler()
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"site":`, http.StatusBadRequest},
		{"unknown site", strings.Replace(managuaBody, "managua", "atlantis", 1), http.StatusNotFound},
		{"blank site", strings.Replace(managuaBody, `"managua"`, `"   "`, 1), http.StatusBadRequest},
		{"missing group", strings.Replace(managuaBody, `"importance_group":"C",`, "", 1), http.StatusBadRequest},
		{"prohibited", strings.Replace(managuaBody, `}`, `,"irregularities":{"soft_story":"extreme"}}`, 1), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h.Calc, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestHandlerExports(t *testing.T) {
	h := newHandler()

	rec := post(t, h.SpectrumTXT, managuaBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "NSM22_MANAGUA_SueloC.txt")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Periodo(s)"))

	rec = post(t, h.SpectrumCSV, managuaBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "period_s,elastic_g,design_g\n"))

	rec = post(t, h.Plot, managuaBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String()[:4])
}

func TestHandlerSystems(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Systems(rec, httptest.NewRequest(http.MethodGet, "/api/systems", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []categoryListing
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, len(refdata.Categories))
	assert.Equal(t, refdata.CategoryBearingWall, out[0].Category)
	assert.NotEmpty(t, out[0].Systems)
}
