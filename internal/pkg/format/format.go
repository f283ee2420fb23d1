// Package format renders counters and dates for display in the
// viewer's locale.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CompactNumber renders n in compact notation ("1.2K", "3.4M") with at
// most one fraction digit, using the locale's digit conventions. NaN
// renders as "N/A".
func CompactNumber(locale string, n float64) string {
	if math.IsNaN(n) {
		return "N/A"
	}

	scaled, suffix := compactScale(n)
	printer := message.NewPrinter(parseLocale(locale))
	return printer.Sprint(number.Decimal(scaled, number.MaxFractionDigits(1))) + suffix
}

func compactScale(n float64) (float64, string) {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return roundTo1(n / 1e9), "B"
	case abs >= 1e6:
		return roundTo1(n / 1e6), "M"
	case abs >= 1e3:
		return roundTo1(n / 1e3), "K"
	default:
		return roundTo1(n), ""
	}
}

func roundTo1(n float64) float64 {
	return math.Round(n*10) / 10
}

// Date renders a timestamp as a medium date ("Jan 2, 2006"). The month
// name is English; per-locale month catalogs are out of scope for now.
func Date(locale string, t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func parseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
