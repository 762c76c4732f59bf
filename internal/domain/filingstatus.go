package domain

import "strings"

// FilingStatus identifies the federal filing status for a tax calculation.
type FilingStatus int

const (
	Single FilingStatus = iota
	MarriedFilingJointly
	MarriedFilingSeparately
	HeadOfHousehold
	QualifyingWidow
)

// ParseFilingStatus normalizes a free-form filing status string.
// Matching is case-insensitive and accepts the common abbreviations
// ("mfj", "mfs", "hoh", "qw") alongside the underscore and spaced forms.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "married_filing_jointly", "married filing jointly", "mfj":
		return MarriedFilingJointly, nil
	case "married_filing_separately", "married filing separately", "mfs":
		return MarriedFilingSeparately, nil
	case "head_of_household", "head of household", "hoh":
		return HeadOfHousehold, nil
	case "qualifying_widow", "qualifying widow", "qw":
		return QualifyingWidow, nil
	default:
		return Single, &InvalidFilingStatusError{Value: s}
	}
}

// String returns the display name for the filing status.
func (fs FilingStatus) String() string {
	switch fs {
	case Single:
		return "Single"
	case MarriedFilingJointly:
		return "Married Filing Jointly"
	case MarriedFilingSeparately:
		return "Married Filing Separately"
	case HeadOfHousehold:
		return "Head of Household"
	case QualifyingWidow:
		return "Qualifying Widow(er)"
	default:
		return "Unknown"
	}
}

// AllFilingStatuses lists every supported filing status in declaration order.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{
		Single,
		MarriedFilingJointly,
		MarriedFilingSeparately,
		HeadOfHousehold,
		QualifyingWidow,
	}
}
