package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rgehrsitz/jptax/internal/calculation"
	"github.com/rgehrsitz/jptax/internal/output"
	"github.com/rgehrsitz/jptax/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recalculate whenever income.yml or tax.yml changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incomePath, taxPath := inputPaths(cmd)
		format, _ := cmd.Flags().GetString("format")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		f := output.GetFormatterByName(format)
		if f == nil || output.IsBinary(f) {
			return fmt.Errorf("unsupported watch format %q (valid: console, verbose, json, csv, html)", format)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		engine := newEngine(cmd)
		var mu sync.Mutex
		recalc := func(reason string) {
			mu.Lock()
			defer mu.Unlock()
			recalculate(cmd, engine, f, incomePath, taxPath, reason)
		}

		w, err := watch.NewFileWatcher([]string{incomePath, taxPath}, debounce, func(e watch.ChangeEvent) {
			recalc(fmt.Sprintf("%s (%s)", e.Path, e.ChangeType))
		})
		if err != nil {
			return err
		}

		recalc("start")
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s and %s (Ctrl+C to stop)\n", incomePath, taxPath)

		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// recalculate runs one calculation and prints the report, or the error. Errors do
// not stop watching.
func recalculate(cmd *cobra.Command, engine *calculation.TaxEngine, f output.Formatter, incomePath, taxPath, reason string) {
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "\n%s %s\n", time.Now().Format("15:04:05"), strings.TrimSpace(reason))

	report, err := engine.RunFiles(incomePath, taxPath)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return
	}
	data, err := f.Format(report)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return
	}
	_, _ = cmd.OutOrStdout().Write(data)
}

func init() {
	watchCmd.Flags().StringP("format", "f", "console", "Output format (console, verbose, json, csv, html)")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before recalculating")
}
