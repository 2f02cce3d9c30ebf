package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/rgehrsitz/jptax/internal/tui/tuistyles"
)

const (
	labelWidth = 36
	valueWidth = 14
)

var (
	labelCell = tuistyles.MetricLabelStyle.Width(labelWidth)
	valueCell = tuistyles.MetricValueStyle.Width(valueWidth).Align(lipgloss.Right)
	totalCell = tuistyles.TotalValueStyle.Width(valueWidth).Align(lipgloss.Right)
)

// ConsoleFormatter prints the seven labelled figures.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, tuistyles.TitleStyle.Render("ANNUAL TAX ESTIMATE"))
	fmt.Fprintln(&buf, estimateStatus(report))
	fmt.Fprintln(&buf)
	writeFigures(&buf, report)
	return buf.Bytes(), nil
}

func estimateStatus(report *domain.TaxReport) string {
	s := report.Income
	style := tuistyles.EstimateStyle(s.IsEstimated())
	if !s.IsEstimated() {
		return style.Render("All months and bonuses recorded")
	}
	return style.Render(fmt.Sprintf("Estimated: %d of %d months and %d of %d bonuses missing",
		s.MissingMonths, domain.MonthsPerYear, s.MissingBonuses, domain.BonusesPerYear))
}

func writeFigures(buf *bytes.Buffer, report *domain.TaxReport) {
	for _, f := range report.Figures() {
		fmt.Fprintln(buf, lipgloss.JoinHorizontal(lipgloss.Top,
			labelCell.Render(f.Label), valueCell.Render(FormatYen(f.Value))))
	}
	fmt.Fprintln(buf, strings.Repeat("─", labelWidth+valueWidth))
	fmt.Fprintln(buf, lipgloss.JoinHorizontal(lipgloss.Top,
		labelCell.Render("total tax"), totalCell.Render(FormatYen(report.TotalTax()))))
}
