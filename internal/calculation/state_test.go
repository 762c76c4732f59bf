package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxcalc/internal/domain"
)

func TestCalculateStateTax(t *testing.T) {
	tests := []struct {
		state string
		want  float64
	}{
		{"TX", 0},
		{"FL", 0},
		{"WA", 0},
		{"CA", 7250},
		{"PA", 3070},
		{"NY", 6850},
		{"DC", 8950},
		{"CO", 4400},
	}

	income := decimal.NewFromInt(100000)
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			got, err := CalculateStateTax(income, tt.state, 2024)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)), "got %s want %v", got, tt.want)
		})
	}
}

func TestCalculateStateTax_CaseInsensitive(t *testing.T) {
	income := decimal.NewFromInt(100000)

	upper, err := CalculateStateTax(income, "CA", 2024)
	require.NoError(t, err)
	lower, err := CalculateStateTax(income, "ca", 2024)
	require.NoError(t, err)
	padded, err := CalculateStateTax(income, " Ca ", 2024)
	require.NoError(t, err)

	assert.True(t, upper.Equal(lower))
	assert.True(t, upper.Equal(padded))
}

func TestCalculateStateTax_UnsupportedJurisdiction(t *testing.T) {
	for _, code := range []string{"ZZ", "XX", "PR", ""} {
		t.Run(code, func(t *testing.T) {
			_, err := CalculateStateTax(decimal.NewFromInt(50000), code, 2024)
			require.Error(t, err)

			var jurErr *domain.UnsupportedJurisdictionError
			require.True(t, errors.As(err, &jurErr))
			assert.Equal(t, code, jurErr.Code)
		})
	}
}

func TestSupportedStates(t *testing.T) {
	codes := SupportedStates()

	// 50 states plus DC.
	assert.Len(t, codes, 51)
	for _, code := range codes {
		assert.Len(t, code, 2)
	}
}
