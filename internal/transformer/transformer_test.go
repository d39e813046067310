package transformer

import (
	"errors"
	"testing"

	"dmadriz/bac-csv/internal/models"
	"dmadriz/bac-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dateCol   = "Fecha de Transacción"
	descCol   = "Descripción de Transacción"
	debitCol  = "Débito de Transacción"
	creditCol = "Crédito de Transacción"
)

func makeStatement(rows ...models.Row) *models.Statement {
	return &models.Statement{
		Columns: []string{dateCol, descCol, debitCol, creditCol},
		Rows:    rows,
		Count:   len(rows),
	}
}

func TestTransform(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol:   "01/03/2024",
		descCol:   "Supermercado ABC",
		debitCol:  "15000.00",
		creditCol: "",
	})

	out, err := Transform(st, 1712345678, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, "2024-03-01", row.Date)
	assert.Equal(t, "Supermercado ABC", row.Merchant)
	assert.Equal(t, "", row.Category)
	assert.Equal(t, "BAC", row.Account)
	assert.Equal(t, "", row.OriginalStatement)
	assert.Equal(t, "id=1712345678", row.Notes)
	assert.Equal(t, "-15000.00", row.Amount.StringFixed(2))
	assert.Equal(t, "", row.Tags)
}

func TestTransformAmountIsCreditMinusDebit(t *testing.T) {
	st := makeStatement(
		models.Row{dateCol: "01/03/2024", descCol: "Pago", debitCol: "1,000.50", creditCol: ""},
		models.Row{dateCol: "02/03/2024", descCol: "Depósito", debitCol: "", creditCol: "2,500.25"},
		models.Row{dateCol: "03/03/2024", descCol: "Ajuste", debitCol: "100.00", creditCol: "250.00"},
	)

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "-1000.50", out[0].Amount.StringFixed(2))
	assert.Equal(t, "2500.25", out[1].Amount.StringFixed(2))
	assert.Equal(t, "150.00", out[2].Amount.StringFixed(2))
}

func TestTransformBothAmountsAbsent(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol: "01/03/2024", descCol: "Nota informativa", debitCol: "", creditCol: "",
	})

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "0.00", out[0].Amount.StringFixed(2))
}

func TestTransformUnparseableAmountDefaultsToZero(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol: "01/03/2024", descCol: "Compra", debitCol: "N/A", creditCol: "50.00",
	})

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "50.00", out[0].Amount.StringFixed(2))
}

func TestTransformDropsRowsWithBadDates(t *testing.T) {
	st := makeStatement(
		models.Row{dateCol: "01/03/2024", descCol: "Buena", debitCol: "10.00", creditCol: ""},
		models.Row{dateCol: "31/02/2024", descCol: "Fecha imposible", debitCol: "10.00", creditCol: ""},
		models.Row{dateCol: "no es fecha", descCol: "Basura", debitCol: "10.00", creditCol: ""},
	)

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Buena", out[0].Merchant)
}

func TestTransformTrimsMerchant(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol: "01/03/2024", descCol: "  Tienda XYZ  ", debitCol: "10.00", creditCol: "",
	})

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tienda XYZ", out[0].Merchant)
}

func TestTransformRewritesTransferReferences(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol: "01/03/2024", descCol: "TEF A: 12345 PAGO", debitCol: "100.00", creditCol: "",
	})

	out, err := Transform(st, 1, map[string]string{"12345": "Mom"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mom - BAC:12345 PAGO", out[0].Merchant)
}

func TestTransformSchemaError(t *testing.T) {
	st := &models.Statement{
		Columns: []string{"Algo", "Otra cosa"},
		Rows:    []models.Row{{"Algo": "x", "Otra cosa": "y"}},
		Count:   1,
	}

	out, err := Transform(st, 1, nil, nil)
	assert.Nil(t, out)
	require.Error(t, err)

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr), "Expected a SchemaError")
	assert.Equal(t, []string{models.ColumnDate, models.ColumnMerchant}, schemaErr.Missing)
	assert.Equal(t, []string{"Algo", "Otra cosa"}, schemaErr.Present)
}

func TestTransformMojibakeColumns(t *testing.T) {
	st := &models.Statement{
		Columns: []string{
			"Fecha de TransacciÃ³n",
			"DescripciÃ³n de TransacciÃ³n",
			"DÃ©bito de TransacciÃ³n",
			"CrÃ©dito de TransacciÃ³n",
		},
		Rows: []models.Row{{
			"Fecha de TransacciÃ³n":        "15/04/2024",
			"DescripciÃ³n de TransacciÃ³n": "Gasolinera",
			"DÃ©bito de TransacciÃ³n":      "30000.00",
			"CrÃ©dito de TransacciÃ³n":     "",
		}},
		Count: 1,
	}

	out, err := Transform(st, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-04-15", out[0].Date)
	assert.Equal(t, "-30000.00", out[0].Amount.StringFixed(2))
}

func TestTransformWithOptions(t *testing.T) {
	st := makeStatement(models.Row{
		dateCol: "01/03/2024", descCol: "TEF A: 12345 PAGO", debitCol: "100.00", creditCol: "",
	})

	opts := Options{AccountLabel: "BAC CR", EchoOriginal: true}
	out, err := TransformWithOptions(st, 1, map[string]string{"12345": "Mom"}, nil, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "BAC CR", out[0].Account)
	assert.Equal(t, "Mom - BAC:12345 PAGO", out[0].Merchant)
	assert.Equal(t, "TEF A: 12345 PAGO", out[0].OriginalStatement)
}
