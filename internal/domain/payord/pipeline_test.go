package payord_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payord-api/internal/domain/details"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/internal/domain/netting"
	"github.com/jhoicas/payord-api/internal/domain/payord"
	"github.com/jhoicas/payord-api/pkg/money"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

var (
	testPayer = entity.Payer{Name: "Importante LLC", Account: "1570075735510200", TaxCode: "1800232459"}
	testNow   = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
)

func rec(tin, bank, name, number, total string, adjustment bool) entity.InvoiceRecord {
	d, _ := money.Parse(total)
	return entity.InvoiceRecord{
		SupplierTIN:         tin,
		SupplierBankAccount: bank,
		SupplierName:        name,
		Series:              "Ա",
		Number:              number,
		TotalText:           total,
		Total:               d,
		IsAdjustment:        adjustment,
	}
}

func newPipeline() *payord.Pipeline {
	return payord.NewPipeline(netting.NewEngine(), details.DefaultRegistry())
}

// sampleBatch: un grupo de compensación (bases 70 y 80 contra 100) y dos facturas ordinarias.
func sampleBatch() []entity.InvoiceRecord {
	sub := rec(taxservice.TINSubscriberNumber, "1930 0000 1111 2222", `«Վեոլիա Ջուր» ՓԲԸ`, "300", "19.99", false)
	sub.BuyerAdditionalData = "Բաժանորդի համարը` 12345:"
	return []entity.InvoiceRecord{
		rec("01111111", "2470 1111", `"Alfa" LLC`, "100", "80", false),
		sub,
		rec("01111111", "2470 1111", `"Alfa" LLC`, "101", "70", false),
		rec("02222222", "1600 2222", "Beta (CJSC)", "200", "123.456", false),
		rec("01111111", "2470 1111", `"Alfa" LLC`, "102", "100", true),
	}
}

func TestRun_CompensacionPrimeroLuegoOrdinarias(t *testing.T) {
	batch := newPipeline().Run(sampleBatch(), testPayer, testNow)

	require.Len(t, batch.Orders, 3)
	require.Len(t, batch.Groups, 1)

	netted := batch.Orders[0]
	assert.Equal(t, "010930", netted.SequenceID)
	assert.Equal(t, "50.00", netted.Amount)
	assert.Equal(t, "Ա101, Ա100, Ա102", netted.Details)
	assert.Equal(t, "Alfa LLC", netted.BeneficiaryName)
	assert.Equal(t, "24701111", netted.BeneficiaryAccount)

	water := batch.Orders[1]
	assert.Equal(t, "020930", water.SequenceID)
	assert.Equal(t, "19.90", water.Amount, "el camino ordinario trunca, no redondea")
	assert.Equal(t, "Բաժանորդի համարը` 12345, Ա300", water.Details)
	assert.Equal(t, `«Վեոլիա Ջուր» ՓԲԸ`, water.BeneficiaryName, "el camino ordinario no limpia comillas")
	assert.Equal(t, "1930000011112222", water.BeneficiaryAccount)

	beta := batch.Orders[2]
	assert.Equal(t, "030930", beta.SequenceID)
	assert.Equal(t, "123.40", beta.Amount)
	assert.Equal(t, "Ա200", beta.Details)
	assert.Equal(t, "Beta (CJSC)", beta.BeneficiaryName)

	for _, o := range batch.Orders {
		assert.Equal(t, testPayer.Account, o.PayerAccount)
		assert.Equal(t, testPayer.TaxCode, o.PayerTaxCode)
		assert.Equal(t, taxservice.CurrencyAMD, o.Currency)
	}
}

func TestRun_ResumenSeDerivaDeLasOrdenes(t *testing.T) {
	batch := newPipeline().Run(sampleBatch(), testPayer, testNow)

	assert.Equal(t, 3, batch.Summary.Count)
	assert.Equal(t, "193.30", batch.Summary.Total.StringFixed(2))
	assert.Equal(t, "193.30", batch.Summary.TotalDisplay())
}

// Cada factura de entrada aparece exactamente una vez entre todas las órdenes.
func TestRun_NingunaFacturaPerdidaNiDuplicada(t *testing.T) {
	records := sampleBatch()
	batch := newPipeline().Run(records, testPayer, testNow)

	var want, got []string
	for _, r := range records {
		want = append(want, r.InvoiceNumber())
	}
	for _, o := range batch.Orders {
		got = append(got, o.InvoiceNumbers...)
	}
	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestRun_AjusteSinBasesSePagaComoOrdinaria(t *testing.T) {
	records := []entity.InvoiceRecord{
		rec("03333333", "2222", "Gamma", "900", "45.67", true),
	}
	batch := newPipeline().Run(records, testPayer, testNow)

	require.Len(t, batch.Orders, 1)
	assert.Empty(t, batch.Groups)
	assert.Equal(t, "45.60", batch.Orders[0].Amount)
	assert.Equal(t, "Ա900", batch.Orders[0].Details)
}

func TestRun_MontoInvalidoEsCero(t *testing.T) {
	records := []entity.InvoiceRecord{rec("03333333", "2222", "Gamma", "901", "n/a", false)}
	batch := newPipeline().Run(records, testPayer, testNow)

	require.Len(t, batch.Orders, 1)
	assert.Equal(t, money.Zero, batch.Orders[0].Amount)
	assert.True(t, batch.Summary.Total.IsZero())
}

func TestRun_Idempotente(t *testing.T) {
	p := newPipeline()
	first := p.Run(sampleBatch(), testPayer, testNow)
	second := p.Run(sampleBatch(), testPayer, testNow)

	assert.Equal(t, first.Orders, second.Orders)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestRun_LoteVacio(t *testing.T) {
	batch := newPipeline().Run(nil, testPayer, testNow)
	assert.Empty(t, batch.Orders)
	assert.Equal(t, 0, batch.Summary.Count)
	assert.True(t, batch.Summary.Total.IsZero())
}
