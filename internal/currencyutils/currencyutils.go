// Package currencyutils provides common amount parsing operations used throughout the application.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string representation of an amount into a decimal value.
// BAC statements use comma as thousands separator and period as decimal point
// ("15,000.00"). Empty strings parse to zero; debit/credit cells are blank when
// the other side of the movement carries the value.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips thousands separators, currency markers and
// surrounding whitespace so the result can be parsed by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.TrimPrefix(amountStr, "₡")
	amountStr = strings.TrimPrefix(amountStr, "CRC")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return strings.TrimSpace(amountStr)
}

// FormatAmount formats a decimal amount with two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
