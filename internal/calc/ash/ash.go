// Package ash classifies the volcanic ash surcharge of NSM-22 section 7.3.
package ash

import "nicspectra/internal/refdata"

// RiskLoadKgM2 is the minimum ash load, in kg/m², inside the risk zone.
const RiskLoadKgM2 = 20.0

// Departments at risk of volcanic ash fall and their municipalities, in
// normalized form.
var riskZones = map[string][]string{
	"CHINANDEGA": {
		"CHINANDEGA", "EL VIEJO", "CORINTO", "CHICHIGALPA", "POSOLTEGA", "EL REALEJO",
		"PUERTO MORAZAN", "SOMOTILLO", "VILLANUEVA", "SANTO TOMAS DEL NORTE", "CINCO PINOS",
		"SAN FRANCISCO DEL NORTE", "SAN PEDRO DEL NORTE",
	},
	"LEON": {
		"LEON", "LA PAZ CENTRO", "NAGAROTE", "QUEZALGUAQUE", "TELICA", "LARREYNAGA",
		"EL JICARAL", "SANTA ROSA DEL PENON", "EL SAUCE", "ACHUAPA",
	},
	"MANAGUA": {
		"MANAGUA", "CIUDAD SANDINO", "TIPITAPA", "MATEARE", "VILLA EL CARMEN",
		"SAN RAFAEL DEL SUR", "TICUANTEPE", "EL CRUCERO", "SAN FRANCISCO LIBRE",
	},
	"MASAYA": {
		"MASAYA", "NINDIRI", "TISMA", "CATARINA", "NIQUINOHOMO", "NANDASMO", "MASATEPE",
		"LA CONCEPCION", "SAN JUAN DE ORIENTE",
	},
	"GRANADA": {
		"GRANADA", "DIRIA", "DIRIOMO", "NANDAIME",
	},
	"CARAZO": {
		"JINOTEPE", "DIRIAMBA", "SAN MARCOS", "DOLORES", "EL ROSARIO", "LA PAZ DE CARAZO",
		"SANTA TERESA", "LA CONQUISTA",
	},
	"RIVAS": {
		"RIVAS", "TOLA", "BELEN", "POTOSI", "BUENOS AIRES", "MOYOGALPA", "ALTAGRACIA",
		"SAN JORGE", "SAN JUAN DEL SUR", "CARDENAS",
	},
}

// atRisk is the flat set of department and municipality names.
var atRisk = func() map[string]bool {
	set := make(map[string]bool)
	for dept, munis := range riskZones {
		set[dept] = true
		for _, m := range munis {
			set[m] = true
		}
	}
	return set
}()

// Load returns the ash load in kg/m² for a department or municipality name
// and whether the name lies in the risk zone. Matching is exact after
// upper-casing and stripping accents.
func Load(name string) (float64, bool) {
	if atRisk[refdata.NormalizeName(name)] {
		return RiskLoadKgM2, true
	}
	return 0, false
}

// Departments returns the at-risk departments with their municipalities.
func Departments() map[string][]string {
	out := make(map[string][]string, len(riskZones))
	for d, m := range riskZones {
		out[d] = append([]string(nil), m...)
	}
	return out
}
