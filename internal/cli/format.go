// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMillions formats a CAD-millions amount the way the statements
// quote figures: billions with one decimal above $1B, plain millions
// below. e.g. 18202 -> "$18.2B", 530 -> "$530M", -403 -> "-$403M"
func FormatMillions(m float64) string {
	if m < 0 {
		return "-" + FormatMillions(-m)
	}
	if m >= 1000 {
		return fmt.Sprintf("$%.1fB", m/1000)
	}
	return fmt.Sprintf("$%.0fM", m)
}

// FormatDeltaMillions formats a change in CAD millions with an explicit
// sign. e.g. +530 -> "+$530M", -403 -> "-$403M"
func FormatDeltaMillions(m float64) string {
	if m >= 0 {
		return "+" + FormatMillions(m)
	}
	return "-" + FormatMillions(-m)
}

// FormatInterval renders a symmetric forecast interval, or an em-dash
// when there is none to show (degenerate fit).
func FormatInterval(lower, upper float64, degenerate bool) string {
	if degenerate {
		return "—"
	}
	return fmt.Sprintf("%s – %s", FormatMillions(lower), FormatMillions(upper))
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatSignedPercent formats a 0-1 fraction as a signed percentage.
// e.g. 0.115 -> "+11.5%", -0.042 -> "-4.2%"
func FormatSignedPercent(f float64) string {
	return fmt.Sprintf("%+.1f%%", f*100)
}

// FormatR2 formats a coefficient of determination. Floating-point dust
// below zero clamps to "0.000" so tables never show "-0.000".
func FormatR2(r2 float64) string {
	if r2 < 0 && r2 > -1e-9 {
		r2 = 0
	}
	return fmt.Sprintf("%.3f", r2)
}

// FormatSlope formats a fitted slope as a signed per-year money rate.
// e.g. 953.7 -> "+$954M/yr"
func FormatSlope(slope float64) string {
	return FormatDeltaMillions(math.Round(slope)) + "/yr"
}

// FormatNumber adds comma separators to an integer.
// e.g. 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
