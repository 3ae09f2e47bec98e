// Package refdata holds the static reference tables of the NSM-22 seismic code:
// peak ground acceleration per site, Managua Vs30 zonation and the structural
// system coefficients. Tables are built once and only read afterwards.
package refdata

import "nicspectra/internal/calc/calcerr"

// LatLon is a geographic point in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Site is one row of the acceleration table. A0 is the rock peak ground
// acceleration in g. Location is nil when the table has no coordinates for it.
type Site struct {
	Name     string  `json:"name"`
	A0       float64 `json:"a0_g"`
	Location *LatLon `json:"location,omitempty"`
}

func (s Site) clone() Site {
	if s.Location != nil {
		loc := *s.Location
		s.Location = &loc
	}
	return s
}

// Vs30Site is a point of the Managua fine zonation with its average shear-wave
// velocity over the top 30 m, in m/s.
type Vs30Site struct {
	Name string  `json:"name"`
	Vs30 float64 `json:"vs30_m_s"`
}

// System is a seismic force-resisting system and its design coefficients.
type System struct {
	Name  string  `json:"name"`
	R     float64 `json:"r"`
	Omega float64 `json:"omega"`
	Cd    float64 `json:"cd"`
}

// Category groups structural systems the way the code tables do.
type Category string

const (
	CategoryBearingWall      Category = "bearing-wall"
	CategoryStructuralWall   Category = "structural-wall"
	CategoryMomentFrame      Category = "moment-frame"
	CategoryDualSpecial      Category = "dual-special"
	CategoryDualIntermediate Category = "dual-intermediate"
	CategoryCantilever       Category = "cantilever"
)

// Categories lists the six categories in display order.
var Categories = []Category{
	CategoryBearingWall,
	CategoryStructuralWall,
	CategoryMomentFrame,
	CategoryDualSpecial,
	CategoryDualIntermediate,
	CategoryCantilever,
}

var categoryLabels = map[Category]string{
	CategoryBearingWall:      "Muros de Carga",
	CategoryStructuralWall:   "Muros Estruct. / Arriostrados",
	CategoryMomentFrame:      "Marcos a Momento",
	CategoryDualSpecial:      "Duales (Especiales)",
	CategoryDualIntermediate: "Duales (Intermedios)",
	CategoryCantilever:       "Voladizo / Otros",
}

// workbook file names used by LoadDir
var categoryFiles = map[Category]string{
	CategoryBearingWall:      "SistemasDeMurosDeCarga.xlsx",
	CategoryStructuralWall:   "SistemasDeMurosEstructuralesYMarcosArriostrados.xlsx",
	CategoryMomentFrame:      "SistemasDeMarcosAMomento.xlsx",
	CategoryDualSpecial:      "SistemasDualesConMarcosDeMomentosEspecialesCapazDeResistirAlMenosEl25DeLasFuerzasSismicasPrescritas.xlsx",
	CategoryDualIntermediate: "SistemasDualesConMarcoDeMomentoIntermedioCapazDeResistirAlMenosEl25DeLasFuerzasSismicasPrescritas.xlsx",
	CategoryCantilever:       "SistemasDeColumnaEnVoladizoYSistemasDeAceroNoDetalladosEspecificamenteParaResistenciaSismica.xlsx",
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts the machine name of a category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", calcerr.Validation("unknown structural category %q", s)
	}
	return c, nil
}
