package services

import (
	"strconv"
	"strings"
)

// Legacy spreadsheet imports left two kinds of bad scaling in the ship table:
// some code fields were stored as the true value multiplied by 10^5, and some
// tonnage values were stored in kilograms instead of tonnes. The thresholds
// below were inferred from the observed bad data; the corrections live here,
// isolated, so they can be retired once the source data is cleaned up.
const (
	codeScaleThreshold    = 100000
	codeScaleDivisor      = 100000
	tonnageScaleThreshold = 1000000
	tonnageScaleDivisor   = 1000
)

// ToNumberOrNull coerces a numeric string to a float. Empty strings and
// invalid numerals yield nil, never an error.
func ToNumberOrNull(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}

// NormalizeScale rescales a code field suspected of being stored as the true
// value multiplied by 10^5. Values below the threshold pass through, nil
// stays nil.
func NormalizeScale(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if *v >= codeScaleThreshold {
		scaled := *v / codeScaleDivisor
		return &scaled
	}
	return v
}

// NormalizeTonnage converts a mass to tonnes. Values at or above the
// threshold are assumed to be kilograms and divided by 1000. A missing value
// becomes 0 because quantity is display-critical.
func NormalizeTonnage(v *float64) float64 {
	if v == nil {
		return 0
	}
	if *v >= tonnageScaleThreshold {
		return *v / tonnageScaleDivisor
	}
	return *v
}
