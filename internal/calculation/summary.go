package calculation

import (
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSummary runs a full tax request: deduction resolution, federal
// bracket tax, credits, and state tax, merged into one summary.
//
// Itemized deductions only apply when they beat the standard deduction.
// Credits reduce federal tax but never below zero. When the request names
// a state, an unknown code fails the whole summary with
// UnsupportedJurisdictionError rather than contributing $0.
func CalculateSummary(req domain.TaxRequest) (*domain.TaxSummary, error) {
	status, err := domain.ParseFilingStatus(req.FilingStatus)
	if err != nil {
		return nil, err
	}

	year := req.TaxYear
	if year == 0 {
		year = fallbackYear
	}

	standardDeduction := GetStandardDeduction(status, year)
	totalDeductions := standardDeduction
	if req.Deductions != nil && req.Deductions.GreaterThan(standardDeduction) {
		totalDeductions = *req.Deductions
	}

	taxableIncome := decimal.Max(req.GrossIncome.Sub(totalDeductions), decimal.Zero)

	federal := CalculateTax(taxableIncome, status, year)

	credits := decimal.Zero
	if req.Credits != nil {
		credits = *req.Credits
	}
	afterCredits := decimal.Max(federal.TotalTax.Sub(credits), decimal.Zero)

	stateTax := decimal.Zero
	if req.State != "" {
		stateTax, err = CalculateStateTax(taxableIncome, req.State, year)
		if err != nil {
			return nil, err
		}
	}

	effectiveRate := decimal.Zero
	if taxableIncome.GreaterThan(decimal.Zero) {
		effectiveRate = afterCredits.Div(taxableIncome)
	}

	return &domain.TaxSummary{
		GrossIncome:            req.GrossIncome,
		FilingStatus:           status.String(),
		TaxYear:                year,
		StandardDeduction:      standardDeduction,
		TotalDeductions:        totalDeductions,
		TaxableIncome:          taxableIncome,
		FederalTax:             federal.TotalTax,
		StateTax:               stateTax,
		TaxCredits:             credits,
		FederalTaxAfterCredits: afterCredits,
		TotalTax:               afterCredits.Add(stateTax),
		EffectiveRate:          effectiveRate,
		MarginalRate:           federal.MarginalRate,
		BracketDetails:         federal.BracketDetails,
	}, nil
}
