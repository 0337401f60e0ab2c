package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/payord-api/pkg/money"
)

func TestParse_ComaDecimal(t *testing.T) {
	d, ok := money.Parse(" 1500,75 ")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1500.75")))
}

func TestParse_TextoInvalidoEsCero(t *testing.T) {
	for _, raw := range []string{"", "abc", "12,3,4", "-10"} {
		d, ok := money.Parse(raw)
		assert.False(t, ok, "raw=%q", raw)
		assert.True(t, d.IsZero(), "raw=%q", raw)
	}
}

// El formato truncado descarta la centésima en vez de redondear.
func TestFormatTruncated_NoRedondea(t *testing.T) {
	assert.Equal(t, "19.90", money.FormatTruncated("19.99"))
	assert.Equal(t, "123.40", money.FormatTruncated("123.456"))
	assert.Equal(t, "5.00", money.FormatTruncated("5,05"))
	assert.Equal(t, "100.00", money.FormatTruncated("100"))
	assert.Equal(t, "0.50", money.FormatTruncated("0.5"))
}

func TestFormatTruncated_InvalidoDevuelveCero(t *testing.T) {
	assert.Equal(t, money.Zero, money.FormatTruncated("n/a"))
	assert.Equal(t, money.Zero, money.FormatTruncated(""))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "50.00", money.FormatFixed(decimal.NewFromInt(50)))
	assert.Equal(t, "-20.50", money.FormatFixed(decimal.RequireFromString("-20.5")))
}

func TestFormatFixed_EmpateRedondeaAlPar(t *testing.T) {
	assert.Equal(t, "50.12", money.FormatFixed(decimal.RequireFromString("50.125")))
	assert.Equal(t, "50.14", money.FormatFixed(decimal.RequireFromString("50.135")))
	assert.Equal(t, "50.13", money.FormatFixed(decimal.RequireFromString("50.1251")))
	assert.Equal(t, "1,000.12", money.FormatDisplay(decimal.RequireFromString("1000.125")))
}

func TestFormatDisplay_SeparadorMiles(t *testing.T) {
	assert.Equal(t, "1,234,567.50", money.FormatDisplay(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "999.00", money.FormatDisplay(decimal.NewFromInt(999)))
	assert.Equal(t, "-1,000.00", money.FormatDisplay(decimal.NewFromInt(-1000)))
}
