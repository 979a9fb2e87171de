// Package format renders figures for advisory messages.
package format

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent renders ratio*100 with a fixed number of decimals, e.g. 0.2162 -> "21.6".
func Percent(ratio float64, decimals int32) string {
	return Fixed(ratio*100, decimals)
}

// Fixed renders v with exactly the given number of decimals.
func Fixed(v float64, decimals int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(decimals)
}

// PercentPlain renders ratio*100 in its shortest form with at most two
// decimals: 0.8 -> "80", 0.335 -> "33.5".
func PercentPlain(ratio float64) string {
	if s, ok := nonFinite(ratio); ok {
		return s
	}
	return decimal.NewFromFloat(ratio).Mul(hundred).Round(2).String()
}

// Number renders v in its shortest form: 0.8 -> "0.8", 100 -> "100".
func Number(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).String()
}

// Whole rounds v to the nearest integer, halves rounding up, and renders it.
func Whole(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	if r == 0 {
		r = 0 // drop negative zero
	}
	return decimal.NewFromFloat(r).String()
}

// Round rounds v to places decimals, halves away from zero. Non-finite
// values are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
