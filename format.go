package chart

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatValue formats v with thousands separators and at most three
// fraction digits, e.g. 42000 -> "42,000".
func FormatValue(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// stageLabel is the text drawn on a funnel stage.
func stageLabel(p Point) string {
	return p.Label + ": " + FormatValue(p.Value)
}
