package wind

// Pressure constant K (Art. 53), calibrated for q in kg/m² and V in m/s.
const PressureK = 0.0479

// Pressure coefficients (Table 8).
const (
	CpWindward = 0.8
	CpLeeward  = 0.4
)

// Exposure factor is 1 up to this height (m).
const referenceHeight = 10.0

type Zone int

const (
	Zone1 Zone = 1
	Zone2 Zone = 2
	Zone3 Zone = 3
)

func (z Zone) Valid() bool { return z >= Zone1 && z <= Zone3 }

// Group is the RNC-07 importance group. Only A and B have regional speeds.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
)

type Roughness string

const (
	R1 Roughness = "R1"
	R2 Roughness = "R2"
	R3 Roughness = "R3"
	R4 Roughness = "R4"
)

type Topography string

const (
	T1 Topography = "T1"
	T2 Topography = "T2"
	T3 Topography = "T3"
	T4 Topography = "T4"
	T5 Topography = "T5"
)

type zoneGroup struct {
	zone  Zone
	group Group
}

// Regional speed Vr in m/s (Table 5).
var regionalSpeed = map[zoneGroup]float64{
	{Zone1, GroupA}: 36, {Zone1, GroupB}: 30,
	{Zone2, GroupA}: 60, {Zone2, GroupB}: 45,
	{Zone3, GroupA}: 70, {Zone3, GroupB}: 56,
}

// RoughnessParams are the exponent α and gradient height δ (m) of a terrain
// class (Table 6).
type RoughnessParams struct {
	Alpha float64 `json:"alpha"`
	Delta float64 `json:"delta_m"`
}

var roughnessTable = map[Roughness]RoughnessParams{
	R1: {Alpha: 0.099, Delta: 245},
	R2: {Alpha: 0.128, Delta: 315},
	R3: {Alpha: 0.156, Delta: 390},
	R4: {Alpha: 0.170, Delta: 455},
}

type topoRough struct {
	topo  Topography
	rough Roughness
}

// Topographic factor Ftr (Table 7). R1 is handled separately.
var topographyTable = map[topoRough]float64{
	{T1, R2}: 0.8, {T1, R3}: 0.70, {T1, R4}: 0.66,
	{T2, R2}: 0.9, {T2, R3}: 0.79, {T2, R4}: 0.74,
	{T3, R2}: 1.0, {T3, R3}: 0.88, {T3, R4}: 0.82,
	{T4, R2}: 1.1, {T4, R3}: 0.97, {T4, R4}: 0.90,
	{T5, R2}: 1.2, {T5, R3}: 1.06, {T5, R4}: 0.98,
}

func RegionalSpeed(z Zone, g Group) (float64, bool) {
	v, ok := regionalSpeed[zoneGroup{z, g}]
	return v, ok
}

func RoughnessFor(r Roughness) (RoughnessParams, bool) {
	p, ok := roughnessTable[r]
	return p, ok
}

// TopographicFactor returns Ftr. Open terrain (R1) ignores topography (Art. 52).
func TopographicFactor(t Topography, r Roughness) (float64, bool) {
	if r == R1 {
		return 1.0, true
	}
	f, ok := topographyTable[topoRough{t, r}]
	return f, ok
}
