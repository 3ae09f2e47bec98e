package refdata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"nicspectra/internal/calc/calcerr"
)

const (
	accelerationFile = "Aceleraciones.xlsx"
	vs30File         = "Vs30.xlsx"
)

// LoadDir builds tables from the workbooks found in dir. Any workbook that is
// missing keeps the corresponding table from base.
func LoadDir(dir string, base *Tables) (*Tables, error) {
	sites := base.Sites()
	vs30 := base.Vs30Sites()
	systems := base.systemsCopy()

	if err := withWorkbook(dir, accelerationFile, func(f *excelize.File) error {
		var err error
		sites, err = readSites(f)
		return err
	}); err != nil {
		return nil, err
	}
	if err := withWorkbook(dir, vs30File, func(f *excelize.File) error {
		var err error
		vs30, err = readVs30(f)
		return err
	}); err != nil {
		return nil, err
	}
	for _, cat := range Categories {
		if err := withWorkbook(dir, categoryFiles[cat], func(f *excelize.File) error {
			list, err := readSystems(f)
			if err != nil {
				return err
			}
			systems[cat] = list
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return New(sites, vs30, systems)
}

func withWorkbook(dir, name string, fn func(*excelize.File) error) error {
	path := filepath.Join(dir, name)
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()
	log.Printf("Loading reference table %s", path)
	if err := fn(f); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func readSites(f *excelize.File) ([]Site, error) {
	rows, cols, err := sheetRows(f, 1, "DEPARTAMENTO", "ACELERACION")
	if err != nil {
		return nil, err
	}
	latCol, hasLat := findColumn(rows[0], "LATITUD")
	lonCol, hasLon := findColumn(rows[0], "LONGITUD")

	var out []Site
	for i, row := range rows[1:] {
		name := cell(row, cols[0])
		if name == "" {
			continue
		}
		a0, err := toFloat(cell(row, cols[1]))
		if err != nil {
			return nil, calcerr.Validation("row %d: acceleration %q is not a number", i+2, cell(row, cols[1]))
		}
		site := Site{Name: strings.TrimSpace(name), A0: a0}
		if hasLat && hasLon {
			lat, errLat := toFloat(cell(row, latCol))
			lon, errLon := toFloat(cell(row, lonCol))
			if errLat == nil && errLon == nil {
				site.Location = &LatLon{Lat: lat, Lon: lon}
			}
		}
		out = append(out, site)
	}
	return out, nil
}

func readVs30(f *excelize.File) ([]Vs30Site, error) {
	rows, err := firstSheet(f)
	if err != nil {
		return nil, err
	}
	nameCol, ok := findColumn(rows[0], "NOMBRE DEL SITIO")
	if !ok {
		return nil, calcerr.Validation("missing column NOMBRE DEL SITIO")
	}
	velCol, ok := findColumn(rows[0], "Vs30(m/s)")
	if !ok {
		velCol, ok = findColumn(rows[0], "Vs30 (m/s)")
	}
	if !ok {
		return nil, calcerr.Validation("missing column Vs30(m/s)")
	}

	var out []Vs30Site
	for i, row := range rows[1:] {
		name := cell(row, nameCol)
		if name == "" {
			continue
		}
		v, err := toFloat(cell(row, velCol))
		if err != nil {
			return nil, calcerr.Validation("row %d: Vs30 %q is not a number", i+2, cell(row, velCol))
		}
		out = append(out, Vs30Site{Name: strings.TrimSpace(name), Vs30: v})
	}
	return out, nil
}

// readSystems reads one structural category workbook. The row after the
// header holds units and is skipped.
func readSystems(f *excelize.File) ([]System, error) {
	rows, cols, err := sheetRows(f, 2, "Sistema Estructural", "R", "Omega", "Coeficiente de deflexion, Cd")
	if err != nil {
		return nil, err
	}
	var out []System
	for i, row := range rows[2:] {
		name := strings.TrimSpace(cell(row, cols[0]))
		if name == "" {
			continue
		}
		var vals [3]float64
		for k := range vals {
			v, err := toFloat(cell(row, cols[k+1]))
			if err != nil {
				return nil, calcerr.Validation("row %d: %q is not a number", i+3, cell(row, cols[k+1]))
			}
			vals[k] = v
		}
		out = append(out, System{Name: name, R: vals[0], Omega: vals[1], Cd: vals[2]})
	}
	return out, nil
}

func firstSheet(f *excelize.File) ([][]string, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, calcerr.Validation("empty sheet")
	}
	return rows, nil
}

// sheetRows returns the first sheet's rows (at least minRows) and the index of
// every required header column.
func sheetRows(f *excelize.File, minRows int, headers ...string) ([][]string, []int, error) {
	rows, err := firstSheet(f)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < minRows {
		return nil, nil, calcerr.Validation("sheet has %d rows, want at least %d", len(rows), minRows)
	}
	cols := make([]int, len(headers))
	for i, h := range headers {
		c, ok := findColumn(rows[0], h)
		if !ok {
			return nil, nil, calcerr.Validation("missing column %s", h)
		}
		cols[i] = c
	}
	return rows, cols, nil
}

func findColumn(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, true
		}
	}
	return 0, false
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// DirExists reports whether dir names an existing directory.
func DirExists(dir string) bool {
	st, err := os.Stat(dir)
	return err == nil && st.IsDir()
}

// Load returns the built-in tables, overridden by the workbooks in dataDir
// when one is given.
func Load(dataDir string) (*Tables, error) {
	if dataDir == "" {
		return Default(), nil
	}
	if !DirExists(dataDir) {
		return nil, fmt.Errorf("data directory %q does not exist", dataDir)
	}
	return LoadDir(dataDir, Default())
}
