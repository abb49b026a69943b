// Package money formatea montos monetarios para el panel.
// Todo monto se guarda como entero de centavos; la cadena con símbolo y
// separador de miles existe solo en la frontera de lectura, nunca en el store.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents convierte centavos a una cadena de moneda localizada.
// Ej.: 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
