package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxcalc/internal/domain"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestCalculateSummary_StandardDeduction(t *testing.T) {
	summary, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
	})
	require.NoError(t, err)

	assert.Equal(t, "Single", summary.FilingStatus)
	assert.Equal(t, 2024, summary.TaxYear)
	assert.True(t, summary.StandardDeduction.Equal(decimal.NewFromInt(14600)))
	assert.True(t, summary.TotalDeductions.Equal(decimal.NewFromInt(14600)))
	assert.True(t, summary.TaxableIncome.Equal(decimal.NewFromInt(35400)))
	assert.True(t, summary.FederalTax.Equal(decimal.NewFromInt(4016)), "got %s", summary.FederalTax)
	assert.True(t, summary.StateTax.IsZero())
	assert.True(t, summary.TotalTax.Equal(decimal.NewFromInt(4016)))
	assert.True(t, summary.MarginalRate.Equal(decimal.NewFromFloat(0.12)))
}

func TestCalculateSummary_ItemizedOnlyWhenLarger(t *testing.T) {
	// Itemized below the standard deduction is ignored.
	low, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		Deductions:   decimalPtr(decimal.NewFromInt(10000)),
	})
	require.NoError(t, err)
	assert.True(t, low.TotalDeductions.Equal(decimal.NewFromInt(14600)))

	high, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		Deductions:   decimalPtr(decimal.NewFromInt(20000)),
	})
	require.NoError(t, err)
	assert.True(t, high.TotalDeductions.Equal(decimal.NewFromInt(20000)))
	assert.True(t, high.TaxableIncome.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateSummary_CreditsFloorAtZero(t *testing.T) {
	summary, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		Credits:      decimalPtr(decimal.NewFromInt(10000)),
	})
	require.NoError(t, err)

	assert.True(t, summary.FederalTax.Equal(decimal.NewFromInt(4016)))
	assert.True(t, summary.FederalTaxAfterCredits.IsZero())
	assert.True(t, summary.TotalTax.IsZero())
	assert.True(t, summary.EffectiveRate.IsZero())
}

func TestCalculateSummary_EffectiveRateAfterCredits(t *testing.T) {
	summary, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		Credits:      decimalPtr(decimal.NewFromInt(500)),
	})
	require.NoError(t, err)

	want := decimal.NewFromInt(3516).Div(decimal.NewFromInt(35400))
	assert.True(t, summary.EffectiveRate.Equal(want), "got %s", summary.EffectiveRate)
}

func TestCalculateSummary_WithStateTax(t *testing.T) {
	summary, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		State:        "ca",
	})
	require.NoError(t, err)

	wantState := decimal.NewFromInt(35400).Mul(decimal.NewFromFloat(0.0725))
	assert.True(t, summary.StateTax.Equal(wantState), "got %s", summary.StateTax)
	assert.True(t, summary.TotalTax.Equal(decimal.NewFromInt(4016).Add(wantState)))
}

func TestCalculateSummary_UnsupportedStatePropagates(t *testing.T) {
	_, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "single",
		State:        "ZZ",
	})
	require.Error(t, err)

	var jurErr *domain.UnsupportedJurisdictionError
	assert.True(t, errors.As(err, &jurErr))
}

func TestCalculateSummary_InvalidFilingStatus(t *testing.T) {
	_, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: "divorced",
	})
	require.Error(t, err)

	var statusErr *domain.InvalidFilingStatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestCalculateSummary_IncomeBelowDeduction(t *testing.T) {
	summary, err := CalculateSummary(domain.TaxRequest{
		GrossIncome:  decimal.NewFromInt(10000),
		FilingStatus: "mfj",
	})
	require.NoError(t, err)

	assert.True(t, summary.TaxableIncome.IsZero())
	assert.True(t, summary.TotalTax.IsZero())
	assert.True(t, summary.EffectiveRate.IsZero())
	assert.Empty(t, summary.BracketDetails)
}
