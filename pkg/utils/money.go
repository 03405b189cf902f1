package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formata um valor monetário no padrão brasileiro com duas
// casas decimais e o prefixo de moeda (ex: "R$ 1.234,56"). Valores nulos são
// formatados como zero.
func FormatCurrency(value *float64) string {
	v := 0.0
	if value != nil {
		v = *value
	}

	return brPrinter.Sprintf("R$ %v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
