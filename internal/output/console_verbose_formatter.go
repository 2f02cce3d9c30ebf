package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/jptax/internal/domain"
)

// ConsoleVerboseFormatter adds the per-period breakdown and estimation details to
// the console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED ANNUAL TAX ESTIMATE")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Run ID:    %s\n", report.RunID)
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CALCULATION RULES:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONTHLY RECORDS")
	fmt.Fprintln(&buf, "===============")
	fmt.Fprintf(&buf, "%-10s %16s %16s %18s\n", "Period", "Income", "Bonus", "Social insurance")
	fmt.Fprintln(&buf, strings.Repeat("-", 63))
	for _, p := range report.Periods {
		bonus := "-"
		if p.HasBonus {
			bonus = FormatOptionalYen(p.Bonus)
		}
		fmt.Fprintf(&buf, "%-10s %16s %16s %18s\n", p.Period, FormatOptionalYen(p.Income), bonus, FormatYen(p.SocialInsurance))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME ESTIMATION")
	fmt.Fprintln(&buf, "=================")
	for _, n := range estimationNotes(report) {
		fmt.Fprintf(&buf, "• %s\n", n)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULT")
	fmt.Fprintln(&buf, "======")
	writeFigures(&buf, report)
	return buf.Bytes(), nil
}
