package protocols

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatUnits renders a dose the way Brazilian prescriptions do, e.g.
// 160000 -> "160.000" and 162500.5 -> "162.500,5".
func formatUnits(value float64) string {
	return ptBR.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(3)))
}

func formatMeasure(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
