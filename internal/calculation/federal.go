package calculation

import (
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateTax computes federal income tax on taxable income using the
// progressive bracket table for the filing status and year.
//
// Negative taxable income is treated as zero; the result then has zero
// tax, zero rates and no bracket details. The walk visits brackets in
// ascending order and consumes the bracket's full width from the
// remaining income even when only part of it was taxed, so income lands
// in brackets positionally rather than skipping empty ones.
func CalculateTax(taxableIncome decimal.Decimal, status domain.FilingStatus, year int) domain.TaxCalculation {
	brackets := GetBrackets(status, year)

	totalTax := decimal.Zero
	marginalRate := decimal.Zero
	var details []domain.BracketDetail

	remaining := taxableIncome
	for _, b := range brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		// The top bracket has no upper bound; its effective width is
		// whatever income is left.
		width := b.Width()
		if b.Unbounded {
			width = remaining
		}

		taxableInBracket := decimal.Min(remaining, width)
		if taxableInBracket.GreaterThan(decimal.Zero) {
			taxFromBracket := taxableInBracket.Mul(b.Rate)
			details = append(details, domain.BracketDetail{
				Min:           b.Min,
				Max:           b.Max,
				Rate:          b.Rate,
				TaxableAmount: taxableInBracket,
				TaxAmount:     taxFromBracket,
				Unbounded:     b.Unbounded,
			})
			totalTax = totalTax.Add(taxFromBracket)
			marginalRate = b.Rate
		}

		remaining = remaining.Sub(width)
	}

	effectiveRate := decimal.Zero
	if taxableIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(taxableIncome)
	}

	return domain.TaxCalculation{
		TotalTax:       totalTax,
		EffectiveRate:  effectiveRate,
		MarginalRate:   marginalRate,
		BracketDetails: details,
	}
}
