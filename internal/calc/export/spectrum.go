package export

import (
	"bufio"
	"fmt"
	"io"

	"nicspectra/internal/calc/spectrum"
)

// WriteSpectrumTXT writes the design spectrum as two aligned columns, the
// format analysis programs import as a response spectrum function.
func WriteSpectrumTXT(w io.Writer, c spectrum.Curve) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-12s%s\n", "Periodo(s)", "Sa_Diseno(g)")
	for _, p := range c.Points {
		fmt.Fprintf(bw, "%-12.2f%.5f\n", p.T, p.Design)
	}
	return bw.Flush()
}

// SpectrumTable holds both curves, one row per period.
func SpectrumTable(c spectrum.Curve) Table {
	t := Table{
		Sheet:  "Espectro",
		Header: []string{"period_s", "elastic_g", "design_g"},
		Rows:   make([][]any, 0, len(c.Points)),
	}
	for _, p := range c.Points {
		t.Rows = append(t.Rows, []any{p.T, p.Elastic, p.Design})
	}
	return t
}

func WriteSpectrumCSV(w io.Writer, c spectrum.Curve) error {
	return WriteCSV(w, SpectrumTable(c))
}
