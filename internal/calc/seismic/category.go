package seismic

// DesignCategory is the seismic design category (CDS).
type DesignCategory string

const (
	CDSA DesignCategory = "A"
	CDSB DesignCategory = "B"
	CDSC DesignCategory = "C"
	CDSD DesignCategory = "D"
)

// bands are ordered from the strongest shaking down; the first band whose
// lower bound a0 reaches wins.
var categoryBands = []struct {
	minA0     float64
	low, high DesignCategory
}{
	{0.30, CDSD, CDSD},
	{0.15, CDSC, CDSD},
	{0.10, CDSB, CDSC},
	{0, CDSA, CDSB},
}

// Category classifies a rock acceleration a0 (g) and risk tier.
func Category(a0 float64, tier RiskTier) DesignCategory {
	for _, b := range categoryBands {
		if a0 >= b.minA0 {
			if tier == HighRisk {
				return b.high
			}
			return b.low
		}
	}
	last := categoryBands[len(categoryBands)-1]
	if tier == HighRisk {
		return last.high
	}
	return last.low
}

// restrictsExtremeStories reports whether the category forbids extreme soft
// or weak stories.
func (c DesignCategory) restrictsExtremeStories() bool {
	return c == CDSC || c == CDSD
}
