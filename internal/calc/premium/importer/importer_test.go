package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/wind"
)

var header = []any{"name", "width_m", "depth_m", "heights", "zone", "group", "roughness", "topography"}

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	all := append([][]any{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadWind(t *testing.T) {
	buf := workbook(t,
		[]any{"Torre A", 20, 15, "4, 3.5, 3.5, 3.5", "Zona 1", "Grupo B", "R2 (Suburbano)", "T3"},
		[]any{"", "", "", "", "", "", "", ""},
		[]any{"Bodega", "12,5", 30, "6", 2, "a", "r1", "t1"},
	)
	got, err := ReadWind(buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 2, got[0].Row)
	assert.Equal(t, "Torre A", got[0].Name)
	assert.Equal(t, wind.Input{
		WidthM: 20, DepthM: 15,
		Heights:    []float64{4, 3.5, 3.5, 3.5},
		Zone:       wind.Zone1,
		Group:      wind.GroupB,
		Roughness:  wind.R2,
		Topography: wind.T3,
	}, got[0].Input)

	assert.Equal(t, 4, got[1].Row)
	assert.Equal(t, 12.5, got[1].Input.WidthM)
	assert.Equal(t, wind.GroupA, got[1].Input.Group)
	assert.Equal(t, wind.R1, got[1].Input.Roughness)
}

func TestReadWindMalformedRow(t *testing.T) {
	buf := workbook(t,
		[]any{"Torre A", 20, 15, "4", 1, "B", "R2", "T3"},
		[]any{"Torre B", 20, 15, "4,x", 1, "B", "R2", "T3"},
	)
	_, err := ReadWind(buf)
	require.Error(t, err)
	assert.True(t, calcerr.IsValidation(err))
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadWindRejectsGarbage(t *testing.T) {
	_, err := ReadWind(bytes.NewReader([]byte("not a workbook")))
	assert.True(t, calcerr.IsValidation(err))

	_, err = ReadWind(workbook(t))
	assert.True(t, calcerr.IsValidation(err))
}

func TestHandlerWind(t *testing.T) {
	xlsx := workbook(t, []any{"Torre A", 20, 15, "4, 3.5", 1, "B", "R2", "T3"})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "edificios.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import/wind", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Wind(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res WindImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Torre A", res.Buildings[0].Name)
	assert.Len(t, res.Buildings[0].Result.Rows, 2)
}

func TestHandlerWindRequiresFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Wind(rec, httptest.NewRequest(http.MethodPost, "/api/import/wind", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
