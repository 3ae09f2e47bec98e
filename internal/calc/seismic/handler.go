package seismic

import (
	"encoding/json"
	"log"
	"net/http"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/export"
	"nicspectra/internal/calc/plot"
	"nicspectra/internal/middleware"
	"nicspectra/internal/refdata"
)

// PlotTitle is the heading used on the chart and the report.
func (r Result) PlotTitle() string {
	return "NSM-22 | " + r.Site.Site.Name + " | Soil " + string(r.Soil)
}

type Handler struct {
	Engine *Engine
}

// Run decodes an Input from the request and evaluates it. On failure the
// error response has already been written.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) (Result, bool) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Result{}, false
	}
	res, err := h.Engine.Calculate(in)
	middleware.ObserveCalculation("seismic", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return Result{}, false
	}
	return res, true
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) SpectrumTXT(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", export.Disposition("attachment", res.ArtifactName()+".txt"))
	if err := export.WriteSpectrumTXT(w, res.Spectrum); err != nil {
		log.Printf("spectrum txt: %v", err)
	}
}

func (h *Handler) SpectrumCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", export.Disposition("attachment", res.ArtifactName()+".csv"))
	if err := export.WriteSpectrumCSV(w, res.Spectrum); err != nil {
		log.Printf("spectrum csv: %v", err)
	}
}

func (h *Handler) Plot(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", export.Disposition("inline", res.ArtifactName()+".png"))
	if err := plot.WritePNG(w, res.Spectrum, plot.Options{Title: res.PlotTitle()}); err != nil {
		log.Printf("spectrum plot: %v", err)
	}
}

type categoryListing struct {
	Category refdata.Category `json:"category"`
	Label    string           `json:"label"`
	Systems  []refdata.System `json:"systems"`
}

func (h *Handler) Systems(w http.ResponseWriter, r *http.Request) {
	out := make([]categoryListing, 0, len(refdata.Categories))
	for _, c := range refdata.Categories {
		out = append(out, categoryListing{Category: c, Label: c.Label(), Systems: h.Engine.Tables.Systems(c)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
