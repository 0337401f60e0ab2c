// Package details deriva el campo DETAILS de las facturas no compensadas según reglas por contraparte.
package details

import (
	"regexp"
	"strings"

	"github.com/jhoicas/payord-api/internal/domain/entity"
)

// Rule estrategia de extracción: Locate obtiene el texto fuente de la factura y Extract la referencia.
type Rule interface {
	Locate(inv entity.InvoiceRecord) (string, bool)
	Extract(text string) (string, bool)
}

// Source campo AdditionalData del que lee una regla.
type Source int

const (
	SourceSupplier Source = iota
	SourceBuyer
	SourceGeneralInfo
)

func (s Source) locate(inv entity.InvoiceRecord) (string, bool) {
	var text string
	switch s {
	case SourceSupplier:
		text = inv.SupplierAdditionalData
	case SourceBuyer:
		text = inv.BuyerAdditionalData
	case SourceGeneralInfo:
		text = inv.GeneralInfoAdditionalData
	}
	return text, text != ""
}

// PatternRule extrae el primer grupo de captura de una expresión regular.
type PatternRule struct {
	Source  Source
	Pattern *regexp.Regexp
}

// NewPatternRule compila pattern; debe tener al menos un grupo de captura.
func NewPatternRule(src Source, pattern string) *PatternRule {
	return &PatternRule{Source: src, Pattern: regexp.MustCompile(pattern)}
}

// Locate implementa Rule.
func (r *PatternRule) Locate(inv entity.InvoiceRecord) (string, bool) {
	return r.Source.locate(inv)
}

// Extract implementa Rule.
func (r *PatternRule) Extract(text string) (string, bool) {
	m := r.Pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	ref := strings.TrimSpace(m[1])
	return ref, ref != ""
}

// VerbatimRule usa el texto fuente completo (recortado) como referencia.
type VerbatimRule struct {
	Source Source
}

// Locate implementa Rule.
func (r *VerbatimRule) Locate(inv entity.InvoiceRecord) (string, bool) {
	return r.Source.locate(inv)
}

// Extract implementa Rule.
func (r *VerbatimRule) Extract(text string) (string, bool) {
	ref := strings.TrimSpace(text)
	return ref, ref != ""
}
