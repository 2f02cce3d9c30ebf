package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/rgehrsitz/jptax/internal/tui"
	"github.com/rgehrsitz/jptax/internal/watch"
)

// simpleLogger implements calculation.Logger on the log package. The TUI owns the
// terminal, so --debug points the log package at a file first.
type simpleLogger struct{}

func (simpleLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

// watchRunner is the part of watch.FileWatcher the program needs.
type watchRunner interface {
	Run(ctx context.Context) error
}

// forwardWatchErrors runs the watcher and reports an unexpected exit to the program.
func forwardWatchErrors(ctx context.Context, w watchRunner, send func(tea.Msg)) {
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("ERROR: file watcher stopped: %v", err)
		send(tui.WatchStoppedMsg{Err: err})
	}
}

var rootCmd = &cobra.Command{
	Use:           "jptax-tui",
	Short:         "Interactive annual tax estimate",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		income, _ := cmd.Flags().GetString("income")
		tax, _ := cmd.Flags().GetString("tax")
		follow, _ := cmd.Flags().GetBool("watch")
		debugMode, _ := cmd.Flags().GetBool("debug")
		logFile, _ := cmd.Flags().GetString("log-file")

		incomePath := config.ResolvePath(income, config.DefaultIncomeFile)
		taxPath := config.ResolvePath(tax, config.DefaultTaxFile)
		for _, path := range []string{incomePath, taxPath} {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s (run `jptax init` to create examples)", path)
			}
		}

		model := tui.NewModel(incomePath, taxPath)
		if debugMode {
			f, err := tea.LogToFile(logFile, "jptax-tui")
			if err != nil {
				return fmt.Errorf("failed to open debug log: %w", err)
			}
			defer f.Close()
			model.SetLogger(simpleLogger{})
		}

		// Create the Bubble Tea program
		p := tea.NewProgram(
			model,
			tea.WithAltScreen(), // Use alternate screen buffer
		)

		if follow {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			w, err := watch.NewFileWatcher([]string{incomePath, taxPath}, 0, func(e watch.ChangeEvent) {
				p.Send(tui.FilesChangedMsg{Path: e.Path})
			})
			if err != nil {
				return err
			}
			go forwardWatchErrors(ctx, w, p.Send)
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("income", "", "Path to income.yml (default: yml/income.yml or income.yml)")
	rootCmd.Flags().String("tax", "", "Path to tax.yml (default: yml/tax.yml or tax.yml)")
	rootCmd.Flags().Bool("watch", false, "Recalculate when either file changes")
	rootCmd.Flags().Bool("debug", false, "Log calculation details to --log-file")
	rootCmd.Flags().String("log-file", "jptax-tui-debug.log", "Debug log path used with --debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
