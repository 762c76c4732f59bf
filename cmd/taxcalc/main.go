package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ledgerline/taxcalc/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "US income tax calculator CLI",
	Long:  "Progressive federal tax, flat state tax, FICA, self-employment tax and quarterly estimate calculator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logging.Config{Level: logLevel, Format: logFormat})
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(bracketsCmd())
	rootCmd.AddCommand(stateCmd())
	rootCmd.AddCommand(ficaCmd())
	rootCmd.AddCommand(seCmd())
	rootCmd.AddCommand(quarterlyCmd())
	rootCmd.AddCommand(versionCmd())

	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
