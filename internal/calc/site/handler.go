package site

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nicspectra/internal/calc/calcerr"
)

type Handler struct {
	Resolver *Resolver
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Resolver.All())
}

func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		http.Error(w, "lat and lon must be numbers", http.StatusBadRequest)
		return
	}
	res, err := h.Resolver.ByPoint(lat, lon)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Vs30(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Resolver.Tables.Vs30Sites())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
