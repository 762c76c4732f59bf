package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerline/taxcalc/internal/calculation"
	"github.com/ledgerline/taxcalc/internal/config"
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/ledgerline/taxcalc/internal/logging"
	"github.com/ledgerline/taxcalc/internal/output"
)

// parseMoney parses a decimal flag value, rejecting garbage early so the
// engine only ever sees well-formed numbers.
func parseMoney(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", flag, value, err)
	}
	return d, nil
}

func calculateCmd() *cobra.Command {
	var (
		income     string
		status     string
		deductions string
		credits    string
		state      string
		year       int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate federal and state income tax",
		Long: "Calculate a full tax summary from a YAML request file, " +
			"or from flags when no file is given",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req *domain.TaxRequest

			if len(args) == 1 {
				logging.Sugar.Infow("loading tax request", "file", args[0])
				parsed, err := config.NewInputParser().LoadFromFile(args[0])
				if err != nil {
					return err
				}
				req = parsed
			} else {
				built, err := requestFromFlags(income, status, deductions, credits, state, year)
				if err != nil {
					return err
				}
				req = built
			}

			summary, err := calculation.CalculateSummary(*req)
			if err != nil {
				return err
			}
			logging.Logger.Debug("summary computed",
				zap.String("taxable_income", summary.TaxableIncome.String()),
				zap.String("total_tax", summary.TotalTax.String()))

			return printSummary(cmd, summary, format)
		},
	}

	cmd.Flags().StringVar(&income, "income", "0", "Gross annual income")
	cmd.Flags().StringVar(&status, "status", "single", "Filing status (single, mfj, mfs, hoh, qw)")
	cmd.Flags().StringVar(&deductions, "deductions", "", "Itemized deductions (standard deduction used when lower or unset)")
	cmd.Flags().StringVar(&credits, "credits", "", "Tax credits")
	cmd.Flags().StringVar(&state, "state", "", "Two-letter state code")
	cmd.Flags().IntVar(&year, "year", 2024, "Tax year")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json, csv)")

	return cmd
}

func requestFromFlags(income, status, deductions, credits, state string, year int) (*domain.TaxRequest, error) {
	gross, err := parseMoney("income", income)
	if err != nil {
		return nil, err
	}

	req := &domain.TaxRequest{
		GrossIncome:  gross,
		FilingStatus: status,
		State:        state,
		TaxYear:      year,
	}

	if deductions != "" {
		d, err := parseMoney("deductions", deductions)
		if err != nil {
			return nil, err
		}
		req.Deductions = &d
	}
	if credits != "" {
		c, err := parseMoney("credits", credits)
		if err != nil {
			return nil, err
		}
		req.Credits = &c
	}

	if err := config.NewInputParser().ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func printSummary(cmd *cobra.Command, summary *domain.TaxSummary, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case output.FormatJSON:
		s, err := (&output.JSONFormatter{Pretty: true}).Format(summary)
		if err != nil {
			return err
		}
		cmd.Println(s)
	case output.FormatCSV:
		s, err := (&output.CSVFormatter{}).FormatSummary(summary)
		if err != nil {
			return err
		}
		cmd.Print(s)
	default:
		cmd.Print((&output.TableFormatter{}).FormatSummary(summary))
	}
	return nil
}
