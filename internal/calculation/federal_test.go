package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxcalc/internal/domain"
)

func TestCalculateTax_SingleFiler(t *testing.T) {
	// $50,000 income - $14,600 standard deduction = $35,400 taxable.
	// 10% on first $11,600 = $1,160; 12% on remaining $23,800 = $2,856.
	result := CalculateTax(decimal.NewFromInt(35400), domain.Single, 2024)

	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(4016)), "got %s", result.TotalTax)
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.12)))

	require.Len(t, result.BracketDetails, 2)
	assert.True(t, result.BracketDetails[0].TaxableAmount.Equal(decimal.NewFromInt(11600)))
	assert.True(t, result.BracketDetails[0].TaxAmount.Equal(decimal.NewFromInt(1160)))
	assert.True(t, result.BracketDetails[1].TaxableAmount.Equal(decimal.NewFromInt(23800)))
	assert.True(t, result.BracketDetails[1].TaxAmount.Equal(decimal.NewFromInt(2856)))

	wantEffective := decimal.NewFromInt(4016).Div(decimal.NewFromInt(35400))
	assert.True(t, result.EffectiveRate.Equal(wantEffective))
}

func TestCalculateTax_MarriedFilingJointly(t *testing.T) {
	// 10% on $23,200 + 12% on $71,100 + 22% on $26,500 = $16,682.
	result := CalculateTax(decimal.NewFromInt(120800), domain.MarriedFilingJointly, 2024)

	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(16682)), "got %s", result.TotalTax)
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.22)))
	assert.Len(t, result.BracketDetails, 3)
}

func TestCalculateTax_ZeroIncome(t *testing.T) {
	for _, status := range domain.AllFilingStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			result := CalculateTax(decimal.Zero, status, 2024)

			assert.True(t, result.TotalTax.IsZero())
			assert.True(t, result.MarginalRate.IsZero())
			assert.True(t, result.EffectiveRate.IsZero())
			assert.Empty(t, result.BracketDetails)
		})
	}
}

func TestCalculateTax_NegativeIncomeClamps(t *testing.T) {
	result := CalculateTax(decimal.NewFromInt(-5000), domain.Single, 2024)

	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.Empty(t, result.BracketDetails)
}

func TestCalculateTax_TopBracket(t *testing.T) {
	// $1,000,000 taxable for a single filer reaches the unbounded bracket.
	result := CalculateTax(decimal.NewFromInt(1000000), domain.Single, 2024)

	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.37)))
	require.Len(t, result.BracketDetails, 7)

	top := result.BracketDetails[6]
	assert.True(t, top.Unbounded)
	assert.True(t, top.TaxableAmount.Equal(decimal.NewFromInt(390650)), "got %s", top.TaxableAmount)

	// Sum of per-bracket amounts reconstructs the input.
	sum := decimal.Zero
	taxSum := decimal.Zero
	for _, d := range result.BracketDetails {
		sum = sum.Add(d.TaxableAmount)
		taxSum = taxSum.Add(d.TaxAmount)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, taxSum.Equal(result.TotalTax))
}

func TestCalculateTax_Monotonic(t *testing.T) {
	incomes := []int64{1, 500, 11600, 11601, 47150, 100000, 191950, 243725, 609350, 750000, 2000000}

	prev := CalculateTax(decimal.Zero, domain.Single, 2024).TotalTax
	for _, inc := range incomes {
		cur := CalculateTax(decimal.NewFromInt(inc), domain.Single, 2024).TotalTax
		assert.True(t, cur.GreaterThan(prev), "tax at %d (%s) must exceed previous (%s)", inc, cur, prev)
		prev = cur
	}
}

func TestCalculateTax_ContinuousAtBoundaries(t *testing.T) {
	// Crossing a bracket boundary by one cent adds one cent at the new
	// marginal rate; there is no jump.
	boundaries := []struct {
		bound     int64
		rateBelow float64
		rateAbove float64
	}{
		{11600, 0.10, 0.12},
		{47150, 0.12, 0.22},
		{100525, 0.22, 0.24},
		{191950, 0.24, 0.32},
		{243725, 0.32, 0.35},
		{609350, 0.35, 0.37},
	}

	cent := decimal.NewFromFloat(0.01)
	for _, b := range boundaries {
		at := CalculateTax(decimal.NewFromInt(b.bound), domain.Single, 2024)
		above := CalculateTax(decimal.NewFromInt(b.bound).Add(cent), domain.Single, 2024)

		assert.True(t, at.MarginalRate.Equal(decimal.NewFromFloat(b.rateBelow)), "at %d", b.bound)
		assert.True(t, above.MarginalRate.Equal(decimal.NewFromFloat(b.rateAbove)), "just above %d", b.bound)

		wantStep := cent.Mul(decimal.NewFromFloat(b.rateAbove))
		step := above.TotalTax.Sub(at.TotalTax)
		assert.True(t, step.Equal(wantStep), "step across %d: got %s want %s", b.bound, step, wantStep)
	}
}

func TestCalculateTax_Idempotent(t *testing.T) {
	income := decimal.NewFromFloat(123456.78)

	first := CalculateTax(income, domain.HeadOfHousehold, 2024)
	second := CalculateTax(income, domain.HeadOfHousehold, 2024)

	assert.True(t, first.TotalTax.Equal(second.TotalTax))
	assert.True(t, first.EffectiveRate.Equal(second.EffectiveRate))
	assert.True(t, first.MarginalRate.Equal(second.MarginalRate))
	assert.Equal(t, len(first.BracketDetails), len(second.BracketDetails))
}
