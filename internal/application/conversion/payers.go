package conversion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
)

// PayerRegistry perfiles de pagador conocidos, buscados por nombre sin distinguir mayúsculas.
type PayerRegistry struct {
	byKey map[string]entity.Payer
	order []string
}

// NewPayerRegistry construye el registro conservando el orden de entrada. Un nombre repetido reemplaza al anterior.
func NewPayerRegistry(payers []entity.Payer) *PayerRegistry {
	r := &PayerRegistry{byKey: make(map[string]entity.Payer, len(payers))}
	for _, p := range payers {
		key := payerKey(p.Name)
		if key == "" {
			continue
		}
		if _, ok := r.byKey[key]; !ok {
			r.order = append(r.order, key)
		}
		r.byKey[key] = p
	}
	return r
}

// List devuelve los perfiles en el orden de registro.
func (r *PayerRegistry) List() []entity.Payer {
	out := make([]entity.Payer, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

// Names nombres registrados ordenados alfabéticamente.
func (r *PayerRegistry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, k := range r.order {
		names = append(names, r.byKey[k].Name)
	}
	sort.Strings(names)
	return names
}

// PayerSelection elección del pagador: perfil por nombre y/o valores explícitos.
type PayerSelection struct {
	Name    string
	Account string
	TaxCode string
}

// Resolve combina el perfil elegido con los valores explícitos, que tienen prioridad.
// Sin perfil, cuenta y código tributario son obligatorios.
func (r *PayerRegistry) Resolve(sel PayerSelection) (entity.Payer, error) {
	var payer entity.Payer
	if name := strings.TrimSpace(sel.Name); name != "" {
		p, ok := r.byKey[payerKey(name)]
		if !ok {
			return entity.Payer{}, fmt.Errorf("%w: %q", domain.ErrPayerNotFound, name)
		}
		payer = p
	}
	if acc := strings.TrimSpace(sel.Account); acc != "" {
		payer.Account = acc
	}
	if tc := strings.TrimSpace(sel.TaxCode); tc != "" {
		payer.TaxCode = tc
	}
	if payer.Account == "" || payer.TaxCode == "" {
		return entity.Payer{}, fmt.Errorf("%w: se requiere pagador o cuenta y código tributario", domain.ErrInvalidInput)
	}
	return payer, nil
}

func payerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
