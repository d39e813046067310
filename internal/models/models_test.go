package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalCSV(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"whole number keeps cents", "-15000", "-15000.00"},
		{"one decimal padded", "1234.5", "1234.50"},
		{"two decimals preserved", "-0.01", "-0.01"},
		{"rounds beyond two decimals", "10.005", "10.01"},
		{"zero", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)

			got, err := NewAmount(d).MarshalCSV()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountUnmarshalCSV(t *testing.T) {
	var a Amount
	require.NoError(t, a.UnmarshalCSV("-15000.00"))
	assert.True(t, a.Decimal.Equal(decimal.NewFromInt(-15000)))

	assert.Error(t, a.UnmarshalCSV("not a number"))
}

func TestStatementClone(t *testing.T) {
	original := &Statement{
		Columns: []string{"Fecha de Transacción", "Descripción de Transacción"},
		Rows: []Row{
			{"Fecha de Transacción": "01/03/2024", "Descripción de Transacción": "COMPRA"},
		},
		Count: 1,
	}

	cloned := original.Clone()
	require.Equal(t, original, cloned)

	cloned.Columns[0] = "changed"
	cloned.Rows[0]["Descripción de Transacción"] = "changed"

	assert.Equal(t, "Fecha de Transacción", original.Columns[0])
	assert.Equal(t, "COMPRA", original.Rows[0]["Descripción de Transacción"])
}

func TestStatementCloneNil(t *testing.T) {
	var s *Statement
	assert.Nil(t, s.Clone())
}

func TestStatementColumn(t *testing.T) {
	s := &Statement{Columns: []string{"Fecha de Transacción", "Débito de Transacción"}}

	assert.Equal(t, "Fecha de Transacción", s.Column(DateColumns))
	assert.Equal(t, "Débito de Transacción", s.Column(DebitColumns))
	assert.Equal(t, "", s.Column(CreditColumns))
}
