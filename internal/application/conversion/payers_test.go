package conversion_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
)

func TestPayerRegistry_ConservaOrdenYReemplazaDuplicados(t *testing.T) {
	reg := conversion.NewPayerRegistry([]entity.Payer{
		{Name: "Westparks LLC", Account: "1", TaxCode: "A"},
		{Name: "CJ", Account: "2", TaxCode: "B"},
		{Name: "westparks llc", Account: "3", TaxCode: "C"},
		{Name: "  "},
	})

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].Account)
	assert.Equal(t, "CJ", list[1].Name)
	assert.Equal(t, []string{"CJ", "westparks llc"}, reg.Names())
}

func TestPayerRegistry_Resolve(t *testing.T) {
	reg := conversion.NewPayerRegistry([]entity.Payer{{Name: "CJ", Account: "1570098200832000", TaxCode: "1800522974"}})

	p, err := reg.Resolve(conversion.PayerSelection{Name: " cj "})
	require.NoError(t, err)
	assert.Equal(t, "1570098200832000", p.Account)

	p, err = reg.Resolve(conversion.PayerSelection{Account: "A", TaxCode: "T"})
	require.NoError(t, err)
	assert.Equal(t, entity.Payer{Account: "A", TaxCode: "T"}, p)

	_, err = reg.Resolve(conversion.PayerSelection{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
