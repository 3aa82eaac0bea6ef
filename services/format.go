package services

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RangeSeparator joins the low and high ends of a currency range.
const RangeSeparator = "–"

// ZeroRange is shown wherever an estimate range cannot be formatted.
const ZeroRange = "$0" + RangeSeparator + "$0"

// FormatCAD formats an amount as Canadian dollars with no fractional digits,
// grouping thousands with commas (e.g., $54,000). Halves round away from zero.
func FormatCAD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0"
	}

	rounded := decimal.NewFromFloat(amount).Round(0)
	negative := rounded.IsNegative()
	if negative {
		rounded = rounded.Neg()
	}

	result := "$" + groupThousands(rounded.String())
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits. Values that fit in an
// int64 go through humanize; anything larger is grouped by hand.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return humanize.Comma(n)
	}

	result := ""
	for len(digits) > 3 {
		result = "," + digits[len(digits)-3:] + result
		digits = digits[:len(digits)-3]
	}
	return digits + result
}

// FormatCurrencyRange formats a low/high pair as "$54,000–$66,000".
func FormatCurrencyRange(low, high float64) string {
	return FormatCAD(low) + RangeSeparator + FormatCAD(high)
}

// FormatArea renders an area the way it is typed: whole numbers without
// decimals, fractional values with as many digits as needed.
func FormatArea(area float64) string {
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return "0"
	}
	return strconv.FormatFloat(area, 'f', -1, 64)
}
