package export

import (
	"bytes"
	"encoding/csv"
	"mime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nicspectra/internal/calc/spectrum"
)

func curve(t *testing.T) spectrum.Curve {
	t.Helper()
	c, err := spectrum.Generate(spectrum.NewParams(0.5031, 5, 0.05, 0.4, 2.0))
	require.NoError(t, err)
	return c
}

func TestWriteSpectrumTXT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSpectrumTXT(&buf, curve(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 402)
	assert.True(t, strings.HasPrefix(lines[0], "Periodo(s)"))
	assert.Contains(t, lines[0], "Sa_Diseno(g)")
	assert.Equal(t, "0.00        0.50310", lines[1])
	assert.True(t, strings.HasPrefix(lines[401], "4.00"))
}

func TestWriteSpectrumCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSpectrumCSV(&buf, curve(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 402)
	assert.Equal(t, []string{"period_s", "elastic_g", "design_g"}, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "0.01", records[2][0])
	assert.Equal(t, "4", records[401][0])
}

func TestWriteXLSXWithTotals(t *testing.T) {
	tbl := Table{
		Sheet:  "Viento",
		Header: []string{"level", "fx_ton"},
		Rows:   [][]any{{1, 2.5}, {2, 1.5}},
		Totals: []any{"total", 4.0},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, tbl))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Viento")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"level", "fx_ton"}, rows[0])
	assert.Equal(t, []string{"2", "1.5"}, rows[2])
	assert.Equal(t, []string{"total", "4"}, rows[3])
}

func TestWriteCSVOmitsTotals(t *testing.T) {
	tbl := Table{Header: []string{"a"}, Rows: [][]any{{"x"}}, Totals: []any{"t"}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t, "a\nx\n", buf.String())
}

func TestDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename=NSM22_MANAGUA_SueloC.txt", Disposition("attachment", "NSM22_MANAGUA_SueloC.txt"))
	assert.Equal(t, `attachment; filename="NSM22_LEON;_CHINANDEGA,_X_SueloD.csv"`, Disposition("attachment", "NSM22_LEON;_CHINANDEGA,_X_SueloD.csv"))

	got := Disposition("inline", "NSM22_LEÓN_SueloD.png")
	assert.True(t, strings.HasPrefix(got, "inline; filename*=utf-8''"), got)
	_, params, err := mime.ParseMediaType(got)
	require.NoError(t, err)
	assert.Equal(t, "NSM22_LEÓN_SueloD.png", params["filename"])
}
