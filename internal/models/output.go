package models

import (
	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value that always marshals to CSV with two
// decimal places.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value as an output amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (a Amount) MarshalCSV() (string, error) {
	return a.StringFixed(2), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (a *Amount) UnmarshalCSV(value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// OutputRow is one line of the eight-column Monarch Money import format.
// Field order matches the fixed column order of the import file; the file is
// written without a header row.
type OutputRow struct {
	Date              string `csv:"Date"`
	Merchant          string `csv:"Merchant"`
	Category          string `csv:"Category"`
	Account           string `csv:"Account"`
	OriginalStatement string `csv:"Original Statement"`
	Notes             string `csv:"Notes"`
	Amount            Amount `csv:"Amount"`
	Tags              string `csv:"Tags"`
}
