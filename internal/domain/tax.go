package domain

import "github.com/shopspring/decimal"

// TaxBracket is a contiguous income range taxed at a single marginal rate.
// The top bracket of a table has Unbounded set instead of a meaningful Max;
// decimal.Decimal has no infinity, so open-ended ranges are flagged
// explicitly.
type TaxBracket struct {
	Min       decimal.Decimal `yaml:"min" json:"min"`
	Max       decimal.Decimal `yaml:"max" json:"max"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// Width returns the span of income the bracket covers. Meaningless for the
// unbounded top bracket; callers cap the effective width at the remaining
// income instead.
func (b TaxBracket) Width() decimal.Decimal {
	return b.Max.Sub(b.Min)
}

// BracketDetail records how much income landed in one bracket during a
// calculation and the tax it produced. Details are only emitted for
// brackets that received a nonzero amount.
type BracketDetail struct {
	Min           decimal.Decimal `json:"min"`
	Max           decimal.Decimal `json:"max"`
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Unbounded     bool            `json:"unbounded,omitempty"`
}

// TaxCalculation is the result of running taxable income through a bracket
// table. EffectiveRate is TotalTax divided by the taxable income passed in
// (zero when that income is zero or negative); MarginalRate is the rate of
// the highest bracket that received any income.
type TaxCalculation struct {
	TotalTax       decimal.Decimal `json:"total_tax"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	MarginalRate   decimal.Decimal `json:"marginal_rate"`
	BracketDetails []BracketDetail `json:"bracket_details"`
}

// FicaResult holds employee-side payroll tax on gross wages.
type FicaResult struct {
	SocialSecurityTax decimal.Decimal `json:"social_security_tax"`
	MedicareTax       decimal.Decimal `json:"medicare_tax"`
	TotalFICA         decimal.Decimal `json:"total_fica"`
}

// SeResult holds self-employment tax. MedicareTax includes the additional
// Medicare surtax when the earnings exceed the threshold.
// DeductibleAmount is always exactly half of TotalSETax.
type SeResult struct {
	SocialSecurityTax decimal.Decimal `json:"social_security_tax"`
	MedicareTax       decimal.Decimal `json:"medicare_tax"`
	TotalSETax        decimal.Decimal `json:"total_se_tax"`
	DeductibleAmount  decimal.Decimal `json:"deductible_amount"`
}

// TaxRequest is the input to a full tax summary calculation. Deductions,
// Credits, State and Withholding are optional; TaxYear defaults to 2024
// when zero.
type TaxRequest struct {
	GrossIncome  decimal.Decimal  `yaml:"gross_income" json:"gross_income"`
	FilingStatus string           `yaml:"filing_status" json:"filing_status"`
	Deductions   *decimal.Decimal `yaml:"deductions,omitempty" json:"deductions,omitempty"`
	Credits      *decimal.Decimal `yaml:"credits,omitempty" json:"credits,omitempty"`
	State        string           `yaml:"state,omitempty" json:"state,omitempty"`
	TaxYear      int              `yaml:"tax_year,omitempty" json:"tax_year,omitempty"`
	Withholding  *decimal.Decimal `yaml:"withholding,omitempty" json:"withholding,omitempty"`
}

// TaxSummary is the combined federal and state picture for one request.
// EffectiveRate here is federal tax after credits divided by taxable
// income, which differs from TaxCalculation.EffectiveRate (pre-credit).
type TaxSummary struct {
	GrossIncome            decimal.Decimal `json:"gross_income"`
	FilingStatus           string          `json:"filing_status"`
	TaxYear                int             `json:"tax_year"`
	StandardDeduction      decimal.Decimal `json:"standard_deduction"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`
	TaxableIncome          decimal.Decimal `json:"taxable_income"`
	FederalTax             decimal.Decimal `json:"federal_tax"`
	StateTax               decimal.Decimal `json:"state_tax"`
	TaxCredits             decimal.Decimal `json:"tax_credits"`
	FederalTaxAfterCredits decimal.Decimal `json:"tax_after_credits"`
	TotalTax               decimal.Decimal `json:"total_tax"`
	EffectiveRate          decimal.Decimal `json:"effective_rate"`
	MarginalRate           decimal.Decimal `json:"marginal_rate"`
	BracketDetails         []BracketDetail `json:"breakdown"`
}

// QuarterlyEstimate breaks remaining annual liability into four estimated
// payments with their due-date labels for the tax year.
type QuarterlyEstimate struct {
	AnnualTax        decimal.Decimal `json:"annual_tax"`
	Withholding      decimal.Decimal `json:"withholding"`
	RemainingTax     decimal.Decimal `json:"remaining_tax"`
	QuarterlyPayment decimal.Decimal `json:"quarterly_payment"`
	DueDates         []string        `json:"due_dates"`
}
