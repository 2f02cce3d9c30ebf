package main

import (
	"fmt"

	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write example income.yml and tax.yml",
	Long: `Write example income.yml and tax.yml files to get started.

The files are written to the given directory, or to ./yml by default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.DefaultConfigDir
		if len(args) == 1 {
			dir = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")

		written, err := config.WriteSamples(dir, force)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
}
