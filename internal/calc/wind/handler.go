package wind

import (
	"encoding/json"
	"log"
	"net/http"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/export"
	"nicspectra/internal/middleware"
)

const artifactName = "cargas_viento_rnc07"

// Table lays the rows out for CSV/XLSX export, with base shears as totals.
func (r Result) Table() export.Table {
	t := export.Table{
		Sheet:  "Viento",
		Header: []string{"level", "z_m", "fa", "vd_m_s", "q_net_kg_m2", "fx_ton", "fy_ton"},
		Rows:   make([][]any, 0, len(r.Rows)),
		Totals: []any{"total", "", "", "", "", r.SumFxTon, r.SumFyTon},
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []any{row.Level, row.ZM, row.Fa, row.VdMS, row.QNetKgM2, row.FxTon, row.FyTon})
	}
	return t
}

// request accepts heights either as a list or as the comma separated text
// typed in the form.
type request struct {
	Input
	HeightsText string `json:"heights,omitempty"`
}

type Handler struct{}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (Result, bool) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Result{}, false
	}
	in := req.Input
	if req.HeightsText != "" {
		heights, err := ParseHeights(req.HeightsText)
		if err != nil {
			middleware.ObserveCalculation("wind", err)
			http.Error(w, err.Error(), calcerr.HTTPStatus(err))
			return Result{}, false
		}
		in.Heights = heights
	}
	res, err := Calculate(in)
	middleware.ObserveCalculation("wind", err)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return Result{}, false
	}
	return res, true
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", export.Disposition("attachment", artifactName+".csv"))
	if err := export.WriteCSV(w, res.Table()); err != nil {
		log.Printf("wind csv: %v", err)
	}
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", export.Disposition("attachment", artifactName+".xlsx"))
	if err := export.WriteXLSX(w, res.Table()); err != nil {
		log.Printf("wind xlsx: %v", err)
	}
}
