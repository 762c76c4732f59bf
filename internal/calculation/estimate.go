package calculation

import (
	"time"

	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var four = decimal.NewFromInt(4)

// EstimateQuarterly computes estimated quarterly payments for the year:
// annual federal tax on income after the standard deduction, less
// withholding (floored at zero), split evenly across the four payment
// dates for the tax year.
func EstimateQuarterly(annualIncome decimal.Decimal, filingStatus string, year int, withholding decimal.Decimal) (*domain.QuarterlyEstimate, error) {
	status, err := domain.ParseFilingStatus(filingStatus)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = fallbackYear
	}

	standardDeduction := GetStandardDeduction(status, year)
	taxableIncome := decimal.Max(annualIncome.Sub(standardDeduction), decimal.Zero)
	calc := CalculateTax(taxableIncome, status, year)

	remaining := decimal.Max(calc.TotalTax.Sub(withholding), decimal.Zero)

	return &domain.QuarterlyEstimate{
		AnnualTax:        calc.TotalTax,
		Withholding:      withholding,
		RemainingTax:     remaining,
		QuarterlyPayment: remaining.Div(four),
		DueDates:         EstimatedDueDates(year),
	}, nil
}

// EstimatedDueDates returns the four estimated payment due dates for a tax
// year: April 15, June 15 and September 15 of the year, and January 15 of
// the following year, each rolled forward past a weekend. Federal
// holidays are not modeled.
func EstimatedDueDates(year int) []string {
	dates := []time.Time{
		time.Date(year, time.April, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year+1, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	labels := make([]string, 0, len(dates))
	for _, d := range dates {
		labels = append(labels, nextBusinessDay(d).Format("January 2, 2006"))
	}
	return labels
}

func nextBusinessDay(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
