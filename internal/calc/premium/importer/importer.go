// Package importer reads building lists from spreadsheets.
package importer

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/wind"
)

// Building is one spreadsheet row. Row is the 1-based sheet row.
type Building struct {
	Row   int        `json:"row"`
	Name  string     `json:"name"`
	Input wind.Input `json:"input"`
}

// ReadWind parses the first sheet of an xlsx workbook. The first row is a
// header; columns are name, width_m, depth_m, heights, zone, group,
// roughness, topography. Blank rows are skipped.
func ReadWind(r io.Reader) ([]Building, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, calcerr.Wrap(calcerr.ErrValidation, err, "invalid workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, calcerr.Wrap(calcerr.ErrValidation, err, "unreadable sheet")
	}
	if len(rows) < 2 {
		return nil, calcerr.Validation("sheet has no data rows")
	}

	var out []Building
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		b, err := parseWindRow(row)
		if err != nil {
			return nil, calcerr.Wrap(calcerr.ErrValidation, err, "row "+strconv.Itoa(i+1))
		}
		b.Row = i + 1
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, calcerr.Validation("sheet has no data rows")
	}
	return out, nil
}

func parseWindRow(row []string) (Building, error) {
	if len(row) < 8 {
		return Building{}, calcerr.Validation("expected 8 columns, got %d", len(row))
	}
	width, err := toFloat(row[1])
	if err != nil {
		return Building{}, calcerr.Validation("width_m %q is not a number", row[1])
	}
	depth, err := toFloat(row[2])
	if err != nil {
		return Building{}, calcerr.Validation("depth_m %q is not a number", row[2])
	}
	heights, err := wind.ParseHeights(row[3])
	if err != nil {
		return Building{}, err
	}
	zone, err := strconv.Atoi(code(row[4], "ZONA"))
	if err != nil {
		return Building{}, calcerr.Validation("zone %q is not a number", row[4])
	}
	return Building{
		Name: strings.TrimSpace(row[0]),
		Input: wind.Input{
			WidthM:     width,
			DepthM:     depth,
			Heights:    heights,
			Zone:       wind.Zone(zone),
			Group:      wind.Group(code(row[5], "GRUPO")),
			Roughness:  wind.Roughness(code(row[6], "")),
			Topography: wind.Topography(code(row[7], "")),
		},
	}, nil
}

// code reduces a label such as "R2 (Suburbano)" or "Zona 1" to its value,
// dropping an optional leading word.
func code(s, prefix string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	if prefix != "" {
		s = strings.TrimPrefix(s, prefix)
	}
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
