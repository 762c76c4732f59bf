package output

import (
	"fmt"
	"strings"

	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const tableWidth = 72

// TableFormatter renders results as fixed-width console tables.
type TableFormatter struct{}

// FormatSummary renders a full tax summary with its bracket breakdown.
func (tf *TableFormatter) FormatSummary(s *domain.TaxSummary) string {
	var sb strings.Builder

	sb.WriteString("TAX SUMMARY\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Filing Status: %s\n", s.FilingStatus))
	sb.WriteString(fmt.Sprintf("Tax Year:      %d\n", s.TaxYear))
	sb.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Gross Income", money(s.GrossIncome)},
		{"Standard Deduction", money(s.StandardDeduction)},
		{"Total Deductions", money(s.TotalDeductions)},
		{"Taxable Income", money(s.TaxableIncome)},
		{"Federal Tax", money(s.FederalTax)},
		{"Tax Credits", money(s.TaxCredits)},
		{"Federal Tax After Credits", money(s.FederalTaxAfterCredits)},
		{"State Tax", money(s.StateTax)},
		{"Total Tax", money(s.TotalTax)},
		{"Effective Rate", percent(s.EffectiveRate)},
		{"Marginal Rate", percent(s.MarginalRate)},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-28s %18s\n", r.label, r.value))
	}

	if len(s.BracketDetails) > 0 {
		sb.WriteString("\nBRACKET BREAKDOWN\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		sb.WriteString(fmt.Sprintf("%-24s %8s %18s %18s\n", "Bracket", "Rate", "Taxable", "Tax"))
		for _, d := range s.BracketDetails {
			sb.WriteString(fmt.Sprintf("%-24s %8s %18s %18s\n",
				bracketRange(d.Min, d.Max, d.Unbounded),
				percent(d.Rate),
				money(d.TaxableAmount),
				money(d.TaxAmount)))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	return sb.String()
}

// FormatEstimate renders a quarterly estimated payment schedule.
func (tf *TableFormatter) FormatEstimate(e *domain.QuarterlyEstimate) string {
	var sb strings.Builder

	sb.WriteString("QUARTERLY ESTIMATED PAYMENTS\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Annual Tax", money(e.AnnualTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Withholding", money(e.Withholding)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Remaining Tax", money(e.RemainingTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Quarterly Payment", money(e.QuarterlyPayment)))
	sb.WriteString("\nDue Dates:\n")
	for i, d := range e.DueDates {
		sb.WriteString(fmt.Sprintf("  Q%d  %s\n", i+1, d))
	}
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	return sb.String()
}

// FormatBrackets renders a bracket table with its standard deduction.
func (tf *TableFormatter) FormatBrackets(status domain.FilingStatus, year int, brackets []domain.TaxBracket, standardDeduction decimal.Decimal) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("FEDERAL TAX BRACKETS - %s, %d\n", strings.ToUpper(status.String()), year))
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-32s %8s\n", "Income Range", "Rate"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
	for _, b := range brackets {
		sb.WriteString(fmt.Sprintf("%-32s %8s\n", bracketRange(b.Min, b.Max, b.Unbounded), percent(b.Rate)))
	}
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-32s %8s\n", "Standard Deduction", money(standardDeduction)))
	return sb.String()
}

// FormatFica renders a payroll tax result.
func (tf *TableFormatter) FormatFica(r *domain.FicaResult) string {
	var sb strings.Builder
	sb.WriteString("FICA TAX\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Social Security", money(r.SocialSecurityTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Medicare", money(r.MedicareTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total FICA", money(r.TotalFICA)))
	return sb.String()
}

// FormatSe renders a self-employment tax result.
func (tf *TableFormatter) FormatSe(r *domain.SeResult) string {
	var sb strings.Builder
	sb.WriteString("SELF-EMPLOYMENT TAX\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Social Security", money(r.SocialSecurityTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Medicare", money(r.MedicareTax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total SE Tax", money(r.TotalSETax)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Deductible Half", money(r.DeductibleAmount)))
	return sb.String()
}

func bracketRange(min, max decimal.Decimal, unbounded bool) string {
	if unbounded {
		return fmt.Sprintf("%s and up", money(min))
	}
	return fmt.Sprintf("%s - %s", money(min), money(max))
}
