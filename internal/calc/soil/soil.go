// Package soil classifies the site soil profile from its Vs30.
package soil

import (
	"strings"

	"nicspectra/internal/calc/calcerr"
)

type Class string

const (
	A Class = "A"
	B Class = "B"
	C Class = "C"
	D Class = "D"
	E Class = "E"
)

var Classes = []Class{A, B, C, D, E}

func (c Class) Valid() bool {
	switch c {
	case A, B, C, D, E:
		return true
	}
	return false
}

// Classify maps the shear-wave velocity vs30 (m/s) to a soil class:
// >1500 A, (760,1500] B, (360,760] C, [180,360] D, otherwise E.
func Classify(vs30 float64) Class {
	switch {
	case vs30 > 1500:
		return A
	case vs30 > 760:
		return B
	case vs30 > 360:
		return C
	case vs30 >= 180:
		return D
	default:
		return E
	}
}

// Parse accepts a class letter chosen directly by the user. A direct choice
// overrides any Vs30 and is not cross-checked against it.
func Parse(s string) (Class, error) {
	c := Class(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", calcerr.Validation("unknown soil class %q", s)
	}
	return c, nil
}
