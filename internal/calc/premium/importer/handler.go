package importer

import (
	"encoding/json"
	"net/http"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/premium/batch"
	"nicspectra/internal/calc/wind"
	"nicspectra/internal/middleware"
)

// maxUpload caps the multipart body.
const maxUpload = 8 << 20

type Handler struct{}

type WindBuildingResult struct {
	Row    int         `json:"row"`
	Name   string      `json:"name"`
	Result wind.Result `json:"result"`
}

type WindImportResult struct {
	Count     int                  `json:"count"`
	Buildings []WindBuildingResult `json:"buildings"`
}

// EvaluateWind runs every imported building; the first failure aborts.
func EvaluateWind(buildings []Building) (WindImportResult, error) {
	items := make([]wind.Input, len(buildings))
	for i, b := range buildings {
		items[i] = b.Input
	}
	res, err := batch.CalculateWind(batch.WindBatchInput{Items: items})
	if err != nil {
		return WindImportResult{}, err
	}
	out := WindImportResult{Count: len(res.Results), Buildings: make([]WindBuildingResult, len(res.Results))}
	for i, r := range res.Results {
		out.Buildings[i] = WindBuildingResult{Row: buildings[i].Row, Name: buildings[i].Name, Result: r}
	}
	return out, nil
}

func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	buildings, err := ReadWind(file)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	res, err := EvaluateWind(buildings)
	middleware.ObserveCalculation("wind_import", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
