package label

import (
	"math"
	"strconv"
	"strings"
)

// FormatSeconds renders a timestamp with the shortest digits that round-trip.
// Integral values keep a trailing ".0", and magnitudes below 1e-4 or at or
// above 1e16 switch to exponent notation (for example "1e-05").
func FormatSeconds(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Format renders l in file form: a single number for a Point, or
// start, end and text joined by tabs for an Interval.
func Format(l Label) string {
	switch l := l.(type) {
	case Point:
		return FormatSeconds(l.Time)
	case Interval:
		return FormatSeconds(l.Start) + "\t" + FormatSeconds(l.End) + "\t" + l.Text
	default:
		return ""
	}
}
