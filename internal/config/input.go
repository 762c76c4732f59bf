package config

import (
	"fmt"
	"os"

	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser loads tax calculation requests from YAML files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a tax request from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates a YAML tax request.
func (ip *InputParser) Parse(data []byte) (*domain.TaxRequest, error) {
	var req domain.TaxRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest checks a tax request for values the engine cannot
// meaningfully compute with. The filing status must parse; amounts must be
// non-negative. An unset tax year is allowed (the engine defaults it), but
// a negative one is rejected here even though the table lookup itself is
// permissive about unknown years.
func (ip *InputParser) ValidateRequest(req *domain.TaxRequest) error {
	if req.FilingStatus == "" {
		return fmt.Errorf("filing_status is required")
	}
	if _, err := domain.ParseFilingStatus(req.FilingStatus); err != nil {
		return err
	}

	if req.GrossIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("gross_income must not be negative, got %s", req.GrossIncome)
	}
	if req.Deductions != nil && req.Deductions.LessThan(decimal.Zero) {
		return fmt.Errorf("deductions must not be negative, got %s", req.Deductions)
	}
	if req.Credits != nil && req.Credits.LessThan(decimal.Zero) {
		return fmt.Errorf("credits must not be negative, got %s", req.Credits)
	}
	if req.Withholding != nil && req.Withholding.LessThan(decimal.Zero) {
		return fmt.Errorf("withholding must not be negative, got %s", req.Withholding)
	}
	if req.TaxYear < 0 {
		return fmt.Errorf("tax_year must not be negative, got %d", req.TaxYear)
	}
	if req.State != "" && len(req.State) != 2 {
		return fmt.Errorf("state must be a two-letter code, got %q", req.State)
	}

	return nil
}
