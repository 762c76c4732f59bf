package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFICA_NoCapsTriggered(t *testing.T) {
	// 6.2% + 1.45% of $100,000 = $7,650.
	result := CalculateFICA(decimal.NewFromInt(100000))

	assert.True(t, result.SocialSecurityTax.Equal(decimal.NewFromInt(6200)), "got %s", result.SocialSecurityTax)
	assert.True(t, result.MedicareTax.Equal(decimal.NewFromInt(1450)), "got %s", result.MedicareTax)
	assert.True(t, result.TotalFICA.Equal(decimal.NewFromInt(7650)))
}

func TestCalculateFICA_WageBaseCap(t *testing.T) {
	maxSS := decimal.NewFromInt(168600).Mul(decimal.NewFromFloat(0.062))

	for _, wages := range []int64{168600, 200000, 500000, 10000000} {
		result := CalculateFICA(decimal.NewFromInt(wages))
		assert.True(t, result.SocialSecurityTax.Equal(maxSS),
			"SS tax at wages %d: got %s, cap %s", wages, result.SocialSecurityTax, maxSS)
	}

	// Below the base the cap must not apply.
	below := CalculateFICA(decimal.NewFromInt(168599))
	assert.True(t, below.SocialSecurityTax.LessThan(maxSS))
}

func TestCalculateFICA_AdditionalMedicare(t *testing.T) {
	// $250,000: Medicare 1.45% = $3,625 plus 0.9% on $50,000 = $450.
	result := CalculateFICA(decimal.NewFromInt(250000))

	wantMedicare := decimal.NewFromInt(4075)
	assert.True(t, result.MedicareTax.Equal(wantMedicare), "got %s", result.MedicareTax)

	wantSS := decimal.NewFromFloat(10453.20)
	assert.True(t, result.SocialSecurityTax.Equal(wantSS), "got %s", result.SocialSecurityTax)
	assert.True(t, result.TotalFICA.Equal(wantSS.Add(wantMedicare)))
}

func TestCalculateFICA_ThresholdBoundary(t *testing.T) {
	// Exactly at the threshold there is no surtax.
	at := CalculateFICA(decimal.NewFromInt(200000))
	assert.True(t, at.MedicareTax.Equal(decimal.NewFromInt(2900)), "got %s", at.MedicareTax)
}

func TestCalculateFICA_NonPositiveWages(t *testing.T) {
	for _, wages := range []int64{0, -100} {
		result := CalculateFICA(decimal.NewFromInt(wages))
		assert.True(t, result.SocialSecurityTax.IsZero())
		assert.True(t, result.MedicareTax.IsZero())
		assert.True(t, result.TotalFICA.IsZero())
	}
}

func TestCalculateFICAForYear_FallsBackTo2024(t *testing.T) {
	base := CalculateFICA(decimal.NewFromInt(100000))
	for _, year := range []int{2019, 2025, 0} {
		other := CalculateFICAForYear(decimal.NewFromInt(100000), year)
		assert.True(t, base.TotalFICA.Equal(other.TotalFICA), "year %d", year)
	}
}
