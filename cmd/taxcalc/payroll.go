package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgerline/taxcalc/internal/calculation"
	"github.com/ledgerline/taxcalc/internal/output"
)

func ficaCmd() *cobra.Command {
	var (
		wages  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "fica",
		Short: "Calculate employee payroll (FICA) tax on gross wages",
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := parseMoney("wages", wages)
			if err != nil {
				return err
			}

			result := calculation.CalculateFICA(gross)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == output.FormatJSON {
				s, err := (&output.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				cmd.Println(s)
				return nil
			}
			cmd.Print((&output.TableFormatter{}).FormatFica(&result))
			return nil
		},
	}

	cmd.Flags().StringVar(&wages, "wages", "0", "Gross annual wages")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")

	return cmd
}

func seCmd() *cobra.Command {
	var (
		netIncome string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "se",
		Short: "Calculate self-employment tax on net SE income",
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := parseMoney("net-income", netIncome)
			if err != nil {
				return err
			}

			result := calculation.CalculateSETax(net)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == output.FormatJSON {
				s, err := (&output.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				cmd.Println(s)
				return nil
			}
			cmd.Print((&output.TableFormatter{}).FormatSe(&result))
			return nil
		},
	}

	cmd.Flags().StringVar(&netIncome, "net-income", "0", "Net self-employment income")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")

	return cmd
}

func quarterlyCmd() *cobra.Command {
	var (
		income      string
		status      string
		withholding string
		year        int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "quarterly",
		Short: "Estimate quarterly tax payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			annual, err := parseMoney("income", income)
			if err != nil {
				return err
			}
			withheld, err := parseMoney("withholding", withholding)
			if err != nil {
				return err
			}

			estimate, err := calculation.EstimateQuarterly(annual, status, year, withheld)
			if err != nil {
				return err
			}

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			switch f {
			case output.FormatJSON:
				s, err := (&output.JSONFormatter{Pretty: true}).Format(estimate)
				if err != nil {
					return err
				}
				cmd.Println(s)
			case output.FormatCSV:
				s, err := (&output.CSVFormatter{}).FormatEstimate(estimate)
				if err != nil {
					return err
				}
				cmd.Print(s)
			default:
				cmd.Print((&output.TableFormatter{}).FormatEstimate(estimate))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", "0", "Gross annual income")
	cmd.Flags().StringVar(&status, "status", "single", "Filing status (single, mfj, mfs, hoh, qw)")
	cmd.Flags().StringVar(&withholding, "withholding", "0", "Tax already withheld for the year")
	cmd.Flags().IntVar(&year, "year", 2024, "Tax year")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json, csv)")

	return cmd
}
