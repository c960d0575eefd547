// Package utils provides common utility functions for datwatch.
package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/reservelabs/datwatch/pkg/models"
)

// NAString is rendered wherever a metric could not be computed. The core
// calculators never substitute it for a number; only formatters do.
const NAString = "N/A"

// FormatCurrencyCompact formats a USD amount with K/M/B suffixes.
// e.g., 3500000000 → "$3.50B", 12400000 → "$12.4M", 9500 → "$10K".
func FormatCurrencyCompact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s$%.1fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s$%.0fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", sign, abs)
	}
}

// FormatCurrency formats a USD amount with thousands separators.
func FormatCurrency(v float64, decimals int) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + "$" + groupThousands(math.Abs(v), decimals)
}

// FormatTokenAmount formats a token quantity with its asset symbol.
// e.g., 4110000 ETH → "4.11M ETH", 838000 → "838.00K ETH", 0.5 → "0.5000 ETH".
func FormatTokenAmount(v float64, asset models.Asset) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%s%.2fM %s", sign, abs/1e6, asset)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.2fK %s", sign, abs/1e3, asset)
	default:
		return fmt.Sprintf("%s%.4f %s", sign, abs, asset)
	}
}

// FormatPercentage formats a fraction as a percentage string.
// e.g., -0.142857 with 2 decimals → "-14.29%".
func FormatPercentage(fraction float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, fraction*100)
}

// FormatSignedPercentage prefixes non-negative percentages with "+",
// matching the table rendering for P&L and net-rate columns.
func FormatSignedPercentage(fraction float64, decimals int) string {
	s := FormatPercentage(fraction, decimals)
	if fraction >= 0 {
		return "+" + s
	}
	return s
}

// FormatOpt formats an optional value with f, or returns "N/A".
func FormatOpt(o models.OptFloat, f func(float64) string) string {
	v, ok := o.Value()
	if !ok {
		return NAString
	}
	return f(v)
}

// FormatOptPercentage is FormatOpt specialized for percentages.
func FormatOptPercentage(o models.OptFloat, decimals int) string {
	v, ok := o.Value()
	if !ok {
		return NAString
	}
	return FormatPercentage(v, decimals)
}

// FormatYieldMultiple renders a productivity yield multiple, including
// the infinite case for zero-yield benchmarks.
func FormatYieldMultiple(rec models.ProductivityRecord) string {
	if rec.InfiniteMultiple {
		return "∞x"
	}
	v, ok := rec.YieldMultiple.Value()
	if !ok {
		return NAString
	}
	return fmt.Sprintf("%.1fx", v)
}

// groupThousands renders abs(v) with comma-separated thousands groups.
func groupThousands(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

// Truncate shortens a string to maxLen with a trailing ellipsis.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
