package models

import (
	"strconv"
	"strings"
)

const (
	depthPlaceholder = "—"
	depthUnit        = " m"

	// Weight given to a zero-thickness section so it still gets a visible band.
	zeroThicknessWeight = 0.5
	// Weight when a section's thickness cannot be computed.
	defaultWeight = 1.0
)

// Parse returns the depth as a number. The second result is false when the
// depth is blank or not numeric.
func (d Depth) Parse() (float64, bool) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders a depth for display: "—" when blank, "<n> m" with at most two
// decimals when numeric, and the raw text verbatim otherwise. Verbatim text
// (e.g. "4,5" or "ca. 3") deliberately gets no unit suffix, matching the
// source data convention.
func (d Depth) Format() string {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return depthPlaceholder
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return FormatNumber(v) + depthUnit
}

// FormatNumber renders a number with at most two decimal places, trimming
// trailing zeros and the decimal point. Integers render without decimals.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// SectionWeight is the proportional visual weight of a section in the strip
// rendering: its thickness when both depths are numeric and the difference is
// positive, a small fixed weight when the difference is zero, and a default of
// one when either depth is missing or the difference is negative.
func SectionWeight(from, to Depth) float64 {
	f, okFrom := from.Parse()
	t, okTo := to.Parse()
	if okFrom && okTo {
		diff := t - f
		if diff > 0 {
			return diff
		}
		if diff == 0 {
			return zeroThicknessWeight
		}
	}
	return defaultWeight
}
