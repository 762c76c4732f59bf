package calculation

import (
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Federal bracket tables and standard deductions, keyed by tax year.
// Source for 2024: IRS Revenue Procedure 2023-34.
//
// The tables are built once at package init and never mutated afterward,
// so they are safe to share across concurrent calculations.

const fallbackYear = 2024

func bracket(min, max int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

func topBracket(min int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:       decimal.NewFromInt(min),
		Max:       decimal.NewFromInt(min),
		Rate:      decimal.NewFromFloat(rate),
		Unbounded: true,
	}
}

// yearTables holds everything that varies by tax year.
type yearTables struct {
	Brackets           map[domain.FilingStatus][]domain.TaxBracket
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
}

var bracketTables = map[int]yearTables{
	2024: tables2024(),
}

func tables2024() yearTables {
	single := []domain.TaxBracket{
		bracket(0, 11600, 0.10),
		bracket(11600, 47150, 0.12),
		bracket(47150, 100525, 0.22),
		bracket(100525, 191950, 0.24),
		bracket(191950, 243725, 0.32),
		bracket(243725, 609350, 0.35),
		topBracket(609350, 0.37),
	}
	mfj := []domain.TaxBracket{
		bracket(0, 23200, 0.10),
		bracket(23200, 94300, 0.12),
		bracket(94300, 201050, 0.22),
		bracket(201050, 383900, 0.24),
		bracket(383900, 487450, 0.32),
		bracket(487450, 731200, 0.35),
		topBracket(731200, 0.37),
	}
	mfs := []domain.TaxBracket{
		bracket(0, 11600, 0.10),
		bracket(11600, 47150, 0.12),
		bracket(47150, 100525, 0.22),
		bracket(100525, 191950, 0.24),
		bracket(191950, 243725, 0.32),
		bracket(243725, 365600, 0.35),
		topBracket(365600, 0.37),
	}
	hoh := []domain.TaxBracket{
		bracket(0, 16550, 0.10),
		bracket(16550, 63100, 0.12),
		bracket(63100, 100500, 0.22),
		bracket(100500, 191950, 0.24),
		bracket(191950, 243700, 0.32),
		bracket(243700, 609350, 0.35),
		topBracket(609350, 0.37),
	}

	return yearTables{
		Brackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.Single:                  single,
			domain.MarriedFilingJointly:    mfj,
			domain.MarriedFilingSeparately: mfs,
			domain.HeadOfHousehold:         hoh,
			// Qualifying Widow(er) uses the MFJ table. Sharing the slice is
			// intentional: the two statuses must never diverge.
			domain.QualifyingWidow: mfj,
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                  decimal.NewFromInt(14600),
			domain.MarriedFilingJointly:    decimal.NewFromInt(29200),
			domain.MarriedFilingSeparately: decimal.NewFromInt(14600),
			domain.HeadOfHousehold:         decimal.NewFromInt(21900),
			domain.QualifyingWidow:         decimal.NewFromInt(29200),
		},
	}
}

// tablesForYear resolves the tables for a tax year. Years without an entry
// fall back to 2024 without error; callers that need year accuracy beyond
// 2024 must add tables rather than rely on this lookup.
func tablesForYear(year int) yearTables {
	if t, ok := bracketTables[year]; ok {
		return t
	}
	return bracketTables[fallbackYear]
}

// GetBrackets returns the federal bracket table for a filing status and
// tax year. The returned slice is shared static data and must not be
// modified.
func GetBrackets(status domain.FilingStatus, year int) []domain.TaxBracket {
	return tablesForYear(year).Brackets[status]
}

// GetStandardDeduction returns the standard deduction for a filing status
// and tax year.
func GetStandardDeduction(status domain.FilingStatus, year int) decimal.Decimal {
	return tablesForYear(year).StandardDeductions[status]
}
