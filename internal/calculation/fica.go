package calculation

import (
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ficaConstants holds the payroll tax parameters for one tax year.
type ficaConstants struct {
	SSRate              decimal.Decimal
	SSWageBase          decimal.Decimal
	MedicareRate        decimal.Decimal
	AdditionalRate      decimal.Decimal
	AdditionalThreshold decimal.Decimal
}

var ficaByYear = map[int]ficaConstants{
	2024: {
		SSRate:              decimal.NewFromFloat(0.062),
		SSWageBase:          decimal.NewFromInt(168600),
		MedicareRate:        decimal.NewFromFloat(0.0145),
		AdditionalRate:      decimal.NewFromFloat(0.009),
		AdditionalThreshold: decimal.NewFromInt(200000),
	},
}

// ficaForYear falls back to the 2024 constants for years without an entry,
// matching the bracket table lookup.
func ficaForYear(year int) ficaConstants {
	if c, ok := ficaByYear[year]; ok {
		return c
	}
	return ficaByYear[fallbackYear]
}

// CalculateFICA computes employee-side Social Security and Medicare tax on
// gross wages. Social Security is capped at the wage base; Medicare is
// uncapped and picks up the additional 0.9% surtax on wages above the
// threshold. Wages at or below zero produce the zero result.
func CalculateFICA(grossWages decimal.Decimal) domain.FicaResult {
	return CalculateFICAForYear(grossWages, fallbackYear)
}

// CalculateFICAForYear is CalculateFICA with explicit year-keyed constants.
func CalculateFICAForYear(grossWages decimal.Decimal, year int) domain.FicaResult {
	if grossWages.LessThanOrEqual(decimal.Zero) {
		return domain.FicaResult{}
	}
	c := ficaForYear(year)

	ssTax := decimal.Min(grossWages, c.SSWageBase).Mul(c.SSRate)

	medicareTax := grossWages.Mul(c.MedicareRate)
	if grossWages.GreaterThan(c.AdditionalThreshold) {
		excess := grossWages.Sub(c.AdditionalThreshold)
		medicareTax = medicareTax.Add(excess.Mul(c.AdditionalRate))
	}

	return domain.FicaResult{
		SocialSecurityTax: ssTax,
		MedicareTax:       medicareTax,
		TotalFICA:         ssTax.Add(medicareTax),
	}
}
