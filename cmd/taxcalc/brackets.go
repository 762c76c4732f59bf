package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgerline/taxcalc/internal/calculation"
	"github.com/ledgerline/taxcalc/internal/domain"
	"github.com/ledgerline/taxcalc/internal/output"
)

func bracketsCmd() *cobra.Command {
	var (
		status string
		year   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Show federal tax brackets for a filing status",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := domain.ParseFilingStatus(status)
			if err != nil {
				return err
			}

			brackets := calculation.GetBrackets(fs, year)
			standardDeduction := calculation.GetStandardDeduction(fs, year)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == output.FormatJSON {
				s, err := (&output.JSONFormatter{Pretty: true}).Format(map[string]any{
					"filing_status":      fs.String(),
					"tax_year":           year,
					"brackets":           brackets,
					"standard_deduction": standardDeduction,
				})
				if err != nil {
					return err
				}
				cmd.Println(s)
				return nil
			}

			cmd.Print((&output.TableFormatter{}).FormatBrackets(fs, year, brackets, standardDeduction))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "single", "Filing status (single, mfj, mfs, hoh, qw)")
	cmd.Flags().IntVar(&year, "year", 2024, "Tax year")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")

	return cmd
}

func stateCmd() *cobra.Command {
	var (
		income string
		state  string
		year   int
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Calculate state income tax for a taxable income",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxable, err := parseMoney("income", income)
			if err != nil {
				return err
			}

			tax, err := calculation.CalculateStateTax(taxable, state, year)
			if err != nil {
				return err
			}

			cmd.Printf("%s state tax on %s: %s\n", state, taxable.StringFixed(2), tax.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", "0", "Taxable income")
	cmd.Flags().StringVar(&state, "state", "", "Two-letter state code")
	cmd.Flags().IntVar(&year, "year", 2024, "Tax year")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}
