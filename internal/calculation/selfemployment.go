package calculation

import (
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Self-employment tax parameters. The SS and Medicare components are the
// combined employer+employee rates; only 92.35% of net earnings is subject
// to the tax, and half of the resulting tax is deductible.
var (
	seEarningsFactor = decimal.NewFromFloat(0.9235)
	seSSRate         = decimal.NewFromFloat(0.124)
	seMedicareRate   = decimal.NewFromFloat(0.029)
	two              = decimal.NewFromInt(2)
)

// CalculateSETax computes self-employment tax on net self-employment
// income. Income at or below zero yields the zero result; the engine
// clamps rather than producing a negative liability.
//
// The additional Medicare surtax uses the same threshold as employee FICA
// applied to SE earnings alone. Real tax law combines SE earnings with
// wages before testing the threshold; this engine does not, a deliberate
// simplification.
func CalculateSETax(netSEIncome decimal.Decimal) domain.SeResult {
	return CalculateSETaxForYear(netSEIncome, fallbackYear)
}

// CalculateSETaxForYear is CalculateSETax with explicit year-keyed wage
// base and surtax threshold.
func CalculateSETaxForYear(netSEIncome decimal.Decimal, year int) domain.SeResult {
	if netSEIncome.LessThanOrEqual(decimal.Zero) {
		return domain.SeResult{}
	}
	c := ficaForYear(year)

	taxableSE := netSEIncome.Mul(seEarningsFactor)

	ssTax := decimal.Min(taxableSE, c.SSWageBase).Mul(seSSRate)

	medicareTax := taxableSE.Mul(seMedicareRate)
	if taxableSE.GreaterThan(c.AdditionalThreshold) {
		excess := taxableSE.Sub(c.AdditionalThreshold)
		medicareTax = medicareTax.Add(excess.Mul(c.AdditionalRate))
	}

	totalSE := ssTax.Add(medicareTax)

	return domain.SeResult{
		SocialSecurityTax: ssTax,
		MedicareTax:       medicareTax,
		TotalSETax:        totalSE,
		DeductibleAmount:  totalSE.Div(two),
	}
}
