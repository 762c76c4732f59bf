package output

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/ledgerline/taxcalc/internal/domain"
)

// CSVFormatter renders results as CSV for spreadsheet import.
type CSVFormatter struct{}

// FormatSummary writes the summary as a field,value sheet followed by the
// bracket breakdown rows.
func (cf *CSVFormatter) FormatSummary(s *domain.TaxSummary) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	records := [][]string{
		{"field", "value"},
		{"gross_income", s.GrossIncome.StringFixed(2)},
		{"filing_status", s.FilingStatus},
		{"tax_year", fmt.Sprintf("%d", s.TaxYear)},
		{"standard_deduction", s.StandardDeduction.StringFixed(2)},
		{"total_deductions", s.TotalDeductions.StringFixed(2)},
		{"taxable_income", s.TaxableIncome.StringFixed(2)},
		{"federal_tax", s.FederalTax.StringFixed(2)},
		{"tax_credits", s.TaxCredits.StringFixed(2)},
		{"tax_after_credits", s.FederalTaxAfterCredits.StringFixed(2)},
		{"state_tax", s.StateTax.StringFixed(2)},
		{"total_tax", s.TotalTax.StringFixed(2)},
		{"effective_rate", s.EffectiveRate.StringFixed(4)},
		{"marginal_rate", s.MarginalRate.StringFixed(4)},
	}
	if err := writer.WriteAll(records); err != nil {
		return "", err
	}

	if len(s.BracketDetails) > 0 {
		if err := writer.Write([]string{"bracket_min", "bracket_max", "rate", "taxable_amount", "tax_amount"}); err != nil {
			return "", err
		}
		for _, d := range s.BracketDetails {
			max := d.Max.StringFixed(2)
			if d.Unbounded {
				max = ""
			}
			row := []string{
				d.Min.StringFixed(2),
				max,
				d.Rate.StringFixed(4),
				d.TaxableAmount.StringFixed(2),
				d.TaxAmount.StringFixed(2),
			}
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatEstimate writes the quarterly schedule, one row per payment.
func (cf *CSVFormatter) FormatEstimate(e *domain.QuarterlyEstimate) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write([]string{"quarter", "due_date", "payment"}); err != nil {
		return "", err
	}
	for i, d := range e.DueDates {
		row := []string{fmt.Sprintf("Q%d", i+1), d, e.QuarterlyPayment.StringFixed(2)}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
