package calculation

import (
	"strings"

	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// State income tax modeled as a single effective rate per state.
// Many states have progressive brackets; these are simplified effective
// rates for 2024, not filing-grade numbers.
var stateRates = buildStateRates()

func buildStateRates() map[string]decimal.Decimal {
	raw := map[string]float64{
		// No income tax
		"AK": 0, "FL": 0, "NV": 0, "NH": 0, "SD": 0,
		"TN": 0, "TX": 0, "WA": 0, "WY": 0,

		// Flat tax states
		"CO": 0.044, "IL": 0.0495, "IN": 0.0305, "KY": 0.04, "MA": 0.05,
		"MI": 0.0405, "NC": 0.0475, "PA": 0.0307, "UT": 0.0465,

		// Progressive states, approximated as effective rates
		"AL": 0.05, "AZ": 0.025, "AR": 0.047, "CA": 0.0725, "CT": 0.05,
		"DE": 0.055, "GA": 0.0549, "HI": 0.0725, "ID": 0.058, "IA": 0.057,
		"KS": 0.057, "LA": 0.0425, "ME": 0.0715, "MD": 0.0575, "MN": 0.0785,
		"MS": 0.05, "MO": 0.0495, "MT": 0.059, "NE": 0.0584, "NJ": 0.0637,
		"NM": 0.049, "NY": 0.0685, "ND": 0.0219, "OH": 0.0399, "OK": 0.0475,
		"OR": 0.099, "RI": 0.0599, "SC": 0.064, "VT": 0.0875, "VA": 0.0575,
		"WV": 0.052, "WI": 0.0765, "DC": 0.0895,
	}
	m := make(map[string]decimal.Decimal, len(raw))
	for code, rate := range raw {
		m[code] = decimal.NewFromFloat(rate)
	}
	return m
}

// CalculateStateTax computes state income tax as taxable income times the
// state's effective rate. The state code is case-insensitive. A code with
// no table entry returns UnsupportedJurisdictionError; there is no default
// rate. The year parameter is accepted for interface symmetry but the
// table is currently year-independent.
func CalculateStateTax(taxableIncome decimal.Decimal, state string, year int) (decimal.Decimal, error) {
	_ = year

	code := strings.ToUpper(strings.TrimSpace(state))
	rate, ok := stateRates[code]
	if !ok {
		return decimal.Zero, &domain.UnsupportedJurisdictionError{Code: state}
	}
	return taxableIncome.Mul(rate), nil
}

// SupportedStates returns the state codes in the rate table, unordered.
func SupportedStates() []string {
	codes := make([]string, 0, len(stateRates))
	for code := range stateRates {
		codes = append(codes, code)
	}
	return codes
}
