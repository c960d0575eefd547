package utils

import (
	"math"
	"time"
)

// DateFormat is the calendar-date layout used by reference data.
const DateFormat = "2006-01-02"

// daysPerMonth is the mean Gregorian month length.
const daysPerMonth = 30.44

// YearsActive returns how long a treasury strategy has been running, in
// years, as of `now`. Months active are floored at 1 so that annualizing
// cumulative figures for a brand-new company never divides by zero.
func YearsActive(start, now time.Time) float64 {
	days := now.Sub(start).Hours() / 24
	months := math.Max(1, days/daysPerMonth)
	return months / 12
}

// DaysUntil returns the whole days from now until a future date, never
// negative.
func DaysUntil(target, now time.Time) int {
	d := int(target.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// CAGR computes the compound annual growth rate between two values.
// Returns false when the inputs make the rate undefined.
func CAGR(startValue, endValue, years float64) (float64, bool) {
	if startValue <= 0 || years <= 0 {
		return 0, false
	}
	return math.Pow(endValue/startValue, 1/years) - 1, true
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MustDate parses a YYYY-MM-DD date known at compile time; it panics on
// malformed input and is only for static reference data.
func MustDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}
