package batch

import (
	"encoding/json"
	"net/http"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/middleware"
)

type Handler struct {
	Engine *seismic.Engine
}

func (h *Handler) Seismic(w http.ResponseWriter, r *http.Request) {
	var input SeismicBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateSeismic(h.Engine, input)
	middleware.ObserveCalculation("seismic_batch", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	var input WindBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateWind(input)
	middleware.ObserveCalculation("wind_batch", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
