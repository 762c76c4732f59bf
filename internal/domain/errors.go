package domain

import "fmt"

// InvalidFilingStatusError indicates a filing status string that could not
// be parsed into one of the supported statuses.
type InvalidFilingStatusError struct {
	Value string
}

func (e *InvalidFilingStatusError) Error() string {
	return fmt.Sprintf("invalid filing status: %s", e.Value)
}

// UnsupportedJurisdictionError indicates a state code with no entry in the
// state rate table. Callers decide whether to treat the state as untaxed or
// reject the request; the engine never substitutes a default rate.
type UnsupportedJurisdictionError struct {
	Code string
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("unsupported state: %s", e.Code)
}

// InvalidTaxYearError is reserved for when year validation is enforced.
// The current tables silently fall back to 2024 for unknown years, so this
// error is defined for the taxonomy but never returned.
type InvalidTaxYearError struct {
	Year int
}

func (e *InvalidTaxYearError) Error() string {
	return fmt.Sprintf("invalid tax year: %d", e.Year)
}
