// Package money agrupa el parseo y formato de montos en AMD usados por las órdenes de pago.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero es el monto literal que se emite cuando el texto de origen no es numérico.
const Zero = "0.00"

// Parse convierte un monto con formato local ("1500,50" o "1500.50") a decimal.
// Texto vacío, no numérico o negativo se normaliza a cero; el segundo valor indica si el parseo fue válido.
func Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// FormatFixed formatea con dos decimales, ej: 50 → "50.00".
// Los empates redondean al par (50.125 → "50.12", 50.135 → "50.14").
func FormatFixed(d decimal.Decimal) string {
	return d.StringFixedBank(2)
}

// FormatTruncated aplica el formato del exportador bancario: parte entera + un decimal truncado + "0".
// Ej: "123.456" → "123.40", "19.99" → "19.90". No redondea.
func FormatTruncated(raw string) string {
	d, ok := Parse(raw)
	if !ok {
		return Zero
	}
	return d.Truncate(1).StringFixed(2)
}

// FormatDisplay formatea para lectura humana con separador de miles: 1234567.5 → "1,234,567.50".
func FormatDisplay(d decimal.Decimal) string {
	s := d.StringFixedBank(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return sign + intPart + "." + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
