package report

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/export"
	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/middleware"
)

type Input struct {
	Meta
	Seismic seismic.Input `json:"seismic"`
}

type Handler struct {
	Engine *seismic.Engine
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Engine.Calculate(input.Seismic)
	middleware.ObserveCalculation("seismic", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}

	rep, err := Build(res, input.Meta, time.Now())
	if err != nil {
		log.Printf("report build: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", export.Disposition("attachment", res.ArtifactName()+".pdf"))
	w.Header().Set("X-Report-ID", rep.ID.String())
	if err := rep.Write(w); err != nil {
		log.Printf("report output: %v", err)
	}
}
