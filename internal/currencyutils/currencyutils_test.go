package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"15000.00", "15000.00"},
		{"15,000.00", "15000.00"},
		{"1,234,567.89", "1234567.89"},
		{" 250.50 ", "250.50"},
		{"₡1,000.00", "1000.00"},
		{"CRC 500.00", "500.00"},
		{"", "0.00"},
		{"   ", "0.00"},
	}

	for _, tc := range tests {
		amount, err := ParseAmount(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, amount.StringFixed(2), "input %q", tc.input)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, input := range []string{"N/A", "abc", "1.2.3"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "15000.00", StandardizeAmount("15,000.00"))
	assert.Equal(t, "", StandardizeAmount("  "))
}
