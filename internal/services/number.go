package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseJobNumber coerces a jobNumber query value the way browser callers
// expect Number() to: surrounding whitespace is ignored, an empty value is 0,
// and a missing or malformed value is NaN. Callers pass c.GetQuery directly.
func ParseJobNumber(raw string, present bool) float64 {
	if !present {
		return math.NaN()
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || strings.Contains(s, "_") {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// ParseFloat also takes Go-only spellings (inf, nan, hex floats, digit
	// separators) that must stay NaN here.
	if strings.ContainsAny(s, "xXpP_nNiI") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// FormatJobNumber renders a bound the way it appears in a search filter.
func FormatJobNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseAmount reads a decimal amount from a query or body value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

var half = decimal.New(5, -1)

// RoundAmount rounds to cents, half-up on the scaled value:
// floor(x*100 + 0.5) / 100.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}
