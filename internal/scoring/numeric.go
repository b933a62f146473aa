// Package scoring implements the supplier scoring engine: numeric
// normalization, per-supplier aggregation, batch-relative scoring, ABC
// classification, rule-based diagnosis and read-time adjustment projection.
//
// The engine is a pure in-memory batch computation. It performs no I/O and
// holds no state between calls; callers persist its output themselves.
package scoring

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses a loosely formatted numeric value into a float64.
// It accepts numbers, numeric strings with mixed thousands/decimal
// separators ("79 586 567,50", "1,270,192.34", "6,56") and returns NaN when
// the value cannot be interpreted, so callers can apply a field-specific
// default instead of handling an error.
func ParseNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return math.NaN()
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN()
		}
		return v
	case float32:
		return ParseNumber(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseNumericString(v)
	default:
		return math.NaN()
	}
}

// parseNumericString normalizes separators and parses the result.
//
// When both comma and dot are present, the one appearing last is the decimal
// separator and every occurrence of the other is a thousands separator. With
// a single separator kind, at most two trailing digits mark it as decimal,
// otherwise it is stripped as a thousands separator. The heuristic cannot
// tell "1,234" (thousands) from a 3-digit decimal without locale context;
// the thousands interpretation wins on purpose.
func parseNumericString(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || s == "+" {
		return math.NaN()
	}

	// Strip whitespace and every rune that is not a digit, separator or sign.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" || s == "+" {
		return math.NaN()
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = keepDecimalSeparator(s, ',', lastComma)
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = keepDecimalSeparator(s, '.', lastDot)
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if len(s)-lastComma-1 <= 2 {
			s = keepDecimalSeparator(s, ',', lastComma)
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if len(s)-lastDot-1 <= 2 {
			s = keepDecimalSeparator(s, '.', lastDot)
		} else {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// keepDecimalSeparator removes every occurrence of sep before the one at
// position last, so "1,234,56" collapses to "1234,56".
func keepDecimalSeparator(s string, sep byte, last int) string {
	head := strings.ReplaceAll(s[:last], string(sep), "")
	return head + s[last:]
}
