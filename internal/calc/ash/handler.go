package ash

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Result struct {
	Site       string  `json:"site"`
	LoadKgM2   float64 `json:"load_kg_m2"`
	InRiskZone bool    `json:"in_risk_zone"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	site := strings.TrimSpace(r.URL.Query().Get("site"))
	if site == "" {
		http.Error(w, "site is required", http.StatusBadRequest)
		return
	}
	load, risk := Load(site)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{Site: site, LoadKgM2: load, InRiskZone: risk})
}
