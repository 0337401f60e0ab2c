package taxxml_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/infrastructure/taxxml"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/invoices.xml")
	require.NoError(t, err)
	return data
}

func TestRead_NormalizaFacturas(t *testing.T) {
	batch, err := taxxml.NewReader().Read(readFixture(t))
	require.NoError(t, err)

	assert.Equal(t, "00232459", batch.BuyerTIN)
	require.Len(t, batch.Records, 3)

	first := batch.Records[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "02500052", first.SupplierTIN)
	assert.Equal(t, "1930 0123 4567 0100", first.SupplierBankAccount, "solo se recortan los extremos")
	assert.Equal(t, "«Էլեկտրական ցանցեր» ՓԲԸ", first.SupplierName)
	assert.Equal(t, "ԱԱ00012345", first.InvoiceNumber())
	assert.Equal(t, "1500,75", first.TotalText)
	assert.Equal(t, "1500.75", first.Total.StringFixed(2))
	assert.False(t, first.IsAdjustment)
	assert.Equal(t, "նշելով 778899", first.SupplierAdditionalData)
	assert.Equal(t, "Բաժանորդի համարը` 12345:", first.BuyerAdditionalData)
	assert.Equal(t, "Պայմանագիր N 45", first.GeneralInfoAdditionalData)
}

func TestRead_FacturaDeAjusteRequiereAmbasMarcas(t *testing.T) {
	batch, err := taxxml.NewReader().Read(readFixture(t))
	require.NoError(t, err)

	assert.True(t, batch.Records[1].IsAdjustment, "AdjustmentAccount=True y DiffFlag=-1")
	assert.False(t, batch.Records[2].IsAdjustment, "DiffFlag distinto de -1")
}

func TestRead_CamposFaltantesPorDefecto(t *testing.T) {
	batch, err := taxxml.NewReader().Read(readFixture(t))
	require.NoError(t, err)

	third := batch.Records[2]
	assert.Equal(t, "", third.SupplierTIN)
	assert.Equal(t, "", third.SupplierName)
	assert.Equal(t, "", third.Series)
	assert.Equal(t, "99", third.InvoiceNumber())
	assert.True(t, third.Total.IsZero(), "monto ilegible se normaliza a cero")
}

func TestRead_DocumentoUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	src := `<?xml version="1.0" encoding="UTF-16"?>` +
		`<ExportedData><SignableData><InvoiceNumber><Series>Ա</Series><Number>1</Number></InvoiceNumber>` +
		`<GoodsInfo><Total><TotalPrice>10</TotalPrice></Total></GoodsInfo></SignableData></ExportedData>`
	data, err := enc.Bytes([]byte(src))
	require.NoError(t, err)

	batch, err := taxxml.NewReader().Read(data)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "Ա1", batch.Records[0].InvoiceNumber())
}

func TestRead_XMLMalformadoEsErrorDeDocumento(t *testing.T) {
	_, err := taxxml.NewReader().Read([]byte("<ExportedData><SignableData>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDocument))
}

func TestRead_SinFacturas(t *testing.T) {
	batch, err := taxxml.NewReader().Read([]byte(`<ExportedData/>`))
	require.NoError(t, err)
	assert.Empty(t, batch.Records)
	assert.Equal(t, "", batch.BuyerTIN)
}
