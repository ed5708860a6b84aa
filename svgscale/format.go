package svgscale

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a scaled value. Whole numbers are written
// without fractional part; other values use FormatRepr.
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return FormatRepr(v)
	}
	if v == math.Trunc(v) {
		if v == 0 { // also catches -0
			return "0"
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return FormatRepr(v)
}

// FormatRepr renders v with the shortest decimal representation
// that parses back to v, always keeping a fractional part
// (150 is written 150.0). Magnitudes below 1e-4 or from 1e16 on
// use exponent notation.
func FormatRepr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// round2 rounds v to 2 decimal places, using the exact decimal
// expansion of v to break ties.
func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
