package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/jptax/internal/output"
	"github.com/spf13/cobra"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate income tax and resident tax",
	Long: `Calculate the annual tax figures from income.yml and tax.yml.

Examples:
  # Console report using yml/income.yml and yml/tax.yml
  jptax calculate

  # Detailed report with the monthly breakdown
  jptax calculate --income 2024/income.yml --tax 2024/tax.yml --format verbose

  # PDF report
  jptax calculate --format pdf --output tax-2024.pdf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incomePath, taxPath := inputPaths(cmd)
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")

		if output.GetFormatterByName(format) == nil {
			return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		report, err := newEngine(cmd).RunFiles(incomePath, taxPath)
		if err != nil {
			return err
		}

		if err := output.GenerateReport(cmd.OutOrStdout(), report, format, outPath); err != nil {
			return err
		}
		if outPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outPath)
		}
		return nil
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, verbose, json, csv, html, pdf)")
	calculateCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
}
