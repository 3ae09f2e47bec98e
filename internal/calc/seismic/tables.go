package seismic

import (
	"nicspectra/internal/calc/site"
	"nicspectra/internal/calc/soil"
)

// Base corner periods in seconds before soil adjustment, and the spectral
// shape exponents.
const (
	BaseTb = 0.05
	BaseTc = 0.30
	BaseTd = 2.0
)

type zoneSoil struct {
	zone site.Zone
	soil soil.Class
}

// Soil amplification Fas by zone and soil class.
var fasTable = map[zoneSoil]float64{
	{site.Z1, soil.A}: 0.8, {site.Z1, soil.B}: 1.0, {site.Z1, soil.C}: 1.4, {site.Z1, soil.D}: 1.7, {site.Z1, soil.E}: 2.2,
	{site.Z2, soil.A}: 0.8, {site.Z2, soil.B}: 1.0, {site.Z2, soil.C}: 1.4, {site.Z2, soil.D}: 1.6, {site.Z2, soil.E}: 2.0,
	{site.Z3, soil.A}: 0.8, {site.Z3, soil.B}: 1.0, {site.Z3, soil.C}: 1.4, {site.Z3, soil.D}: 1.5, {site.Z3, soil.E}: 2.4,
	{site.Z4, soil.A}: 0.8, {site.Z4, soil.B}: 1.0, {site.Z4, soil.C}: 1.3, {site.Z4, soil.D}: 1.4, {site.Z4, soil.E}: 2.4,
}

// ZoneFactor returns Fas for a zone and soil class, or 1.0 for a pair outside
// the table.
func ZoneFactor(zone site.Zone, class soil.Class) float64 {
	if f, ok := fasTable[zoneSoil{zone, class}]; ok {
		return f
	}
	return 1.0
}

// Corner period multipliers (Fs for Tb, Fs for Tc) per soil class.
var spectralAdjustment = map[soil.Class][2]float64{
	soil.A: {1.0, 5.0 / 6.0},
	soil.B: {1.0, 1.0},
	soil.C: {1.0, 4.0 / 3.0},
	soil.D: {2.0, 5.0 / 3.0},
	soil.E: {2.0, 5.0 / 3.0},
}

// SpectralAdjustment returns the Tb and Tc multipliers for a soil class.
func SpectralAdjustment(class soil.Class) (fsTb, fsTc float64) {
	f, ok := spectralAdjustment[class]
	if !ok {
		return 1.0, 1.0
	}
	return f[0], f[1]
}

// RiskTier separates the importance groups that tighten the design category.
type RiskTier int

const (
	LowRisk RiskTier = iota
	HighRisk
)

// ImportanceGroup is an occupancy group of NSM-22 Tabla 5.2.1.
type ImportanceGroup string

const (
	GroupA ImportanceGroup = "A"
	GroupB ImportanceGroup = "B"
	GroupC ImportanceGroup = "C"
	GroupD ImportanceGroup = "D"
)

type groupInfo struct {
	label  string
	class  string
	factor float64
	tier   RiskTier
}

var importanceGroups = map[ImportanceGroup]groupInfo{
	GroupA: {"Grupo A: Esenciales/Críticas", "IV", 1.65, HighRisk},
	GroupB: {"Grupo B: Ocupación Especial", "III", 1.30, HighRisk},
	GroupC: {"Grupo C: Ocupación Normal", "II", 1.00, LowRisk},
	GroupD: {"Grupo D: No habitacional", "I", 0.75, LowRisk},
}

var Groups = []ImportanceGroup{GroupA, GroupB, GroupC, GroupD}

func (g ImportanceGroup) Valid() bool {
	_, ok := importanceGroups[g]
	return ok
}

func (g ImportanceGroup) Label() string {
	info := importanceGroups[g]
	return info.label + " (" + info.class + ")"
}

// Factor is the importance factor I.
func (g ImportanceGroup) Factor() float64 {
	return importanceGroups[g].factor
}

func (g ImportanceGroup) Tier() RiskTier {
	return importanceGroups[g].tier
}
