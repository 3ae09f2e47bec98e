package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/refdata"
)

const bearingWall = "Muros de cortante especiales de concreto reforzado"

func engine() *seismic.Engine {
	return seismic.NewEngine(refdata.Default())
}

func TestBuild(t *testing.T) {
	res, err := engine().Calculate(seismic.Input{
		Site:     "LEÓN",
		Vs30:     300,
		Group:    seismic.GroupB,
		Category: refdata.CategoryBearingWall,
		System:   bearingWall,
	})
	require.NoError(t, err)

	rep, err := Build(res, Meta{Project: "Edificio Central", Author: "Ing. Pérez"}, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rep.ID)

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 10_000)
}

func TestHandlerGenerate(t *testing.T) {
	h := &Handler{Engine: engine()}
	body := `{"project":"P1","author":"A","seismic":{"site":"MANAGUA","soil_class":"C","importance_group":"C","structural_category":"bearing-wall","structural_system":"` + bearingWall + `"}}`

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/seismic/report.pdf", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "NSM22_MANAGUA_SueloC.pdf")
	_, err := uuid.Parse(rec.Header().Get("X-Report-ID"))
	assert.NoError(t, err)
}

func TestHandlerGenerateProhibited(t *testing.T) {
	h := &Handler{Engine: engine()}
	body := `{"seismic":{"site":"MANAGUA","soil_class":"C","importance_group":"C","structural_category":"bearing-wall","structural_system":"` + bearingWall + `","irregularities":{"weak_story":"extreme"}}}`

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/seismic/report.pdf", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
