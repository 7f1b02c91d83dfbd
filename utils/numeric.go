package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat parses a locale-formatted numeric string such as "1,50,000.50"
// into a float, stripping comma separators and surrounding whitespace.
// Returns nil on any parse failure; it never errors out to the caller.
func ToFloat(s string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// SafeDivide returns a/b rounded to 4 decimal places. A missing operand
// and a zero divisor collapse into the same nil "undefined ratio" result;
// callers cannot and must not tell them apart.
func SafeDivide(a, b *float64) *float64 {
	if a == nil || b == nil || *b == 0 {
		return nil
	}
	v := math.Round(*a / *b * 10000) / 10000
	return &v
}

// FormatPercent renders x as a percentage with two decimals ("30.57%"),
// or the literal "N/A" when x is absent.
func FormatPercent(x *float64) string {
	if x == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *x*100)
}
