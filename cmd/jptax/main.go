package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/jptax/internal/calculation"
	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jptax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "jptax",
	Short: "Japanese income tax and resident tax estimator",
	Long: `Estimate the annual income tax (所得税) and resident tax (住民税) of a salaried
employee from monthly payroll records (income.yml) and a tax rule table (tax.yml).

Months and bonuses not paid yet may be left as null; the annual income is then
extrapolated from the recorded periods.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// inputPaths resolves --income and --tax, falling back to yml/<name> or <name>.
func inputPaths(cmd *cobra.Command) (string, string) {
	income, _ := cmd.Flags().GetString("income")
	tax, _ := cmd.Flags().GetString("tax")
	return config.ResolvePath(income, config.DefaultIncomeFile), config.ResolvePath(tax, config.DefaultTaxFile)
}

// newEngine returns an engine that logs through the log package under --debug.
func newEngine(cmd *cobra.Command) *calculation.TaxEngine {
	engine := calculation.NewTaxEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		log.SetOutput(cmd.ErrOrStderr())
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func init() {
	rootCmd.PersistentFlags().String("income", "", "Path to income.yml (default: yml/income.yml or income.yml)")
	rootCmd.PersistentFlags().String("tax", "", "Path to tax.yml (default: yml/tax.yml or tax.yml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
