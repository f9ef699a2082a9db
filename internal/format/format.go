// Package format holds the display formatting applied at normalization
// time. Monetary and date fields leave the normalizers as final display
// strings, not raw values.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// NA is the sentinel for absent or non-displayable values.
const NA = "N/A"

// Money renders a positive amount as $1,234.50. Zero, negative and NaN
// values come back as the N/A sentinel.
func Money(v float64) string {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// MoneyPtr is Money with absent treated as N/A.
func MoneyPtr(v *float64) string {
	if v == nil {
		return NA
	}
	return Money(*v)
}

// Date reformats an ISO calendar date (2025-08-12) to the locale style
// 8/12/2025. Unparsable strings pass through unchanged.
func Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// Timestamp reformats an ISO timestamp (fractional seconds and zone
// designators tolerated) to M/D/YYYY. Unparsable strings pass through.
func Timestamp(iso string) string {
	s := iso
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04:05-07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
		}
	}
	return iso
}

// Weight renders an order weight in ounces below one pound and in pounds
// at or above it. Unknown units pass through with the original value.
func Weight(value float64, unit string) string {
	if value <= 0 {
		return NA
	}

	var ounces float64
	switch strings.ToUpper(unit) {
	case "", "LBS", "LB", "POUNDS":
		ounces = value * 16
	case "OZ", "OUNCES":
		ounces = value
	default:
		return fmt.Sprintf("%.1f %s", value, unit)
	}

	if ounces >= 16 {
		return fmt.Sprintf("%.1f lbs", ounces/16)
	}
	return fmt.Sprintf("%.1f oz", ounces)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CostPerUnitWeight derives price per pound. It is defined only when both
// price and weight are positive; otherwise nil, never a division error.
func CostPerUnitWeight(price, weight *float64) *float64 {
	if price == nil || weight == nil || *price <= 0 || *weight <= 0 {
		return nil
	}
	v := Round2(*price / *weight)
	return &v
}
