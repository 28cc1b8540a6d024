package csvparse

import (
	"testing"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       float64
		wantForced model.Direction
	}{
		{"plain", "12.50", 12.50, ""},
		{"negative", "-45.00", -45.00, ""},
		{"explicit plus", "+45.00", 45.00, ""},
		{"pound symbol", "£1,234.56", 1234.56, ""},
		{"dollar symbol", "$99.99", 99.99, ""},
		{"euro symbol", "€10.00", 10.00, ""},
		{"thousands separator", "1,234,567.89", 1234567.89, ""},
		{"interior whitespace", "1 234.56", 1234.56, ""},
		{"parentheses negative", "(12.50)", -12.50, ""},
		{"parentheses with symbol", "(£12.50)", -12.50, ""},
		{"symbol outside parentheses", "£(12.50)", -12.50, ""},
		{"CR suffix forces credit", "12.50CR", 12.50, model.DirectionCredit},
		{"CR suffix with space", "12.50 CR", 12.50, model.DirectionCredit},
		{"DR suffix forces debit and negates", "12.50DR", -12.50, model.DirectionDebit},
		{"DR already negative", "-12.50 DR", -12.50, model.DirectionDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, forced, err := parseAmount(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.Equal(t, tt.wantForced, forced)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"prose", "pending"},
		{"only symbol", "£"},
		{"only sign", "-"},
		{"two decimal points", "12.34.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseAmount(tt.raw)
			assert.Error(t, err)
		})
	}
}
