package main

import (
	"fmt"

	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate income.yml and tax.yml without calculating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incomePath, taxPath := inputPaths(cmd)
		out := cmd.OutOrStdout()

		records, err := config.NewIncomeLoader().LoadFromFile(incomePath)
		if err != nil {
			return fmt.Errorf("%s: %w", incomePath, err)
		}
		missing := 0
		for _, rec := range records {
			if rec.MonthIncome.Income == nil {
				missing++
			}
		}
		fmt.Fprintf(out, "✓ %s: %d monthly records (%d not recorded), %d bonus periods\n",
			incomePath, len(records), missing, records.BonusCount())

		cfg, err := config.NewTaxLoader().LoadFromFile(taxPath)
		if err != nil {
			return fmt.Errorf("%s: %w", taxPath, err)
		}
		fmt.Fprintf(out, "✓ %s: %d year-end adjustment, %d basic allowance, %d income tax rules\n",
			taxPath, len(cfg.RulesForYearEndAdjustment), len(cfg.RulesForBasicAllowance), len(cfg.RulesForIncomeTax))
		return nil
	},
}
