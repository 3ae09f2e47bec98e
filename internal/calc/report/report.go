// Package report builds the PDF design report of a seismic calculation.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"nicspectra/internal/calc/plot"
	"nicspectra/internal/calc/seismic"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Report is a rendered document ready to be written out.
type Report struct {
	ID  uuid.UUID
	pdf *gofpdf.Fpdf
}

func (r *Report) Write(w io.Writer) error {
	return r.pdf.Output(w)
}

// Build lays out the report: identification, site and soil, structural
// system, design parameters, irregularity factors and the spectrum chart.
func Build(res seismic.Result, meta Meta, now time.Time) (*Report, error) {
	if meta.Title == "" {
		meta.Title = "Memoria de calculo sismico NSM-22"
	}
	id := uuid.New()

	var chart bytes.Buffer
	if err := plot.WritePNG(&chart, res.Spectrum, plot.Options{Title: res.PlotTitle()}); err != nil {
		return nil, fmt.Errorf("report: render plot: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Proyecto: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Autor: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fecha: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Reporte: %s", id))
	pdf.Ln(10)

	p := res.Params
	section(pdf, "Sitio y suelo")
	rows(pdf, tr, [][2]string{
		{"Sitio", res.Site.Site.Name},
		{"Zona sismica", res.Site.Zone.String()},
		{"a0 (g)", f3(p.RockA0)},
		{"Tipo de suelo", string(res.Soil)},
		{"Grupo", res.GroupLabel},
		{"Categoria de diseno sismico", string(res.CDS)},
		{"Carga de ceniza (kg/m2)", f3(res.Site.AshKgM2)},
	})

	section(pdf, "Sistema estructural")
	rows(pdf, tr, [][2]string{
		{"Categoria", res.Category.Label()},
		{"Sistema", res.System.Name},
		{"R", f3(p.R)},
		{"Omega0", f3(p.Omega)},
		{"Cd", f3(p.Cd)},
	})

	section(pdf, "Irregularidades")
	rows(pdf, tr, [][2]string{
		{"Phi pa / Phi pb", f3(res.Plan.PhiPA) + " / " + f3(res.Plan.PhiPB)},
		{"Phi p", f3(p.PhiP)},
		{"Phi ea / Phi eb", f3(res.Elevation.PhiEA) + " / " + f3(res.Elevation.PhiEB)},
		{"Phi e", f3(p.PhiE)},
		{"R0 = R Phi p Phi e", f3(p.R0)},
	})

	section(pdf, "Parametros del espectro")
	rows(pdf, tr, [][2]string{
		{"Fas", f3(p.Fas)},
		{"I", f3(p.I)},
		{"A0 = a0 Fas I (g)", f4(p.A0)},
		{"Fs(Tb) / Fs(Tc)", f3(p.FsTb) + " / " + f3(p.FsTc)},
		{"Tb / Tc / Td (s)", f3(p.Tb) + " / " + f3(p.Tc) + " / " + f3(p.Td)},
		{"beta / p / q", f3(p.Beta) + " / " + f3(p.P) + " / " + f3(p.Q)},
	})

	if meta.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, tr(meta.Notes), "", "L", false)
	}

	pdf.AddPage()
	section(pdf, "Espectro de respuesta")
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("spectrum", opts, &chart)
	pdf.ImageOptions("spectrum", 10, pdf.GetY()+2, 190, 95, false, opts, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &Report{ID: id, pdf: pdf}, nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func rows(pdf *gofpdf.Fpdf, tr func(string) string, kv [][2]string) {
	for _, row := range kv {
		pdf.CellFormat(70, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 6, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func f3(v float64) string { return fmt.Sprintf("%.3f", v) }
func f4(v float64) string { return fmt.Sprintf("%.4f", v) }
