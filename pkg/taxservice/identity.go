package taxservice

import (
	"regexp"
	"strings"
)

// payerSuffixLen cantidad de caracteres finales del TAXCODE que debe contener el TIN del comprador.
const payerSuffixLen = 8

var quoteGlyphs = regexp.MustCompile(`["«»()（）]`)

// MatchesPayer indica si el TIN del comprador corresponde al TAXCODE del pagador.
// El TIN vacío no se considera discrepancia.
func MatchesPayer(buyerTIN, payerTaxCode string) bool {
	if buyerTIN == "" {
		return true
	}
	suffix := payerTaxCode
	if r := []rune(payerTaxCode); len(r) > payerSuffixLen {
		suffix = string(r[len(r)-payerSuffixLen:])
	}
	return strings.HasSuffix(buyerTIN, suffix)
}

// CleanBankAccount elimina espacios de formato y recorta la cuenta a BenAccMaxLen caracteres.
func CleanBankAccount(account string) string {
	r := []rune(strings.ReplaceAll(account, " ", ""))
	if len(r) > BenAccMaxLen {
		r = r[:BenAccMaxLen]
	}
	return string(r)
}

// StripQuoteGlyphs quita comillas y paréntesis decorativos del nombre del proveedor: `«Ընկերություն» ՍՊԸ` → `Ընկերություն ՍՊԸ`.
func StripQuoteGlyphs(name string) string {
	return quoteGlyphs.ReplaceAllString(name, "")
}
