package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/rgehrsitz/jptax/internal/output"
	"github.com/rgehrsitz/jptax/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.report == nil && m.err != nil:
		content = m.renderError()
	case m.report == nil:
		content = m.renderLoading()
	default:
		switch m.currentScene {
		case SceneSummary:
			content = m.renderSummary()
		case SceneRecords:
			content = m.renderRecords()
		case SceneHelp:
			content = m.renderHelp()
		default:
			content = "Unknown scene"
		}
		if m.err != nil {
			content = lipgloss.JoinVertical(lipgloss.Left, m.renderError(), content)
		}
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("JPTAX - Annual Tax Estimate")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut(keys.Summary),
		formatShortcut(keys.Records),
		formatShortcut(keys.Reload),
		formatShortcut(keys.Help),
		formatShortcut(keys.Quit),
	}
	statusText := strings.Join(shortcuts, " • ")
	if m.loading {
		statusText += "  " + InfoStyle.Render("calculating…")
	}
	if m.watchErr != nil {
		statusText += "  " + WarningStyle.Render("watch stopped: "+m.watchErr.Error())
	}
	return StatusBarStyle.Render(statusText)
}

// formatShortcut formats a key binding with its help text
func formatShortcut(b key.Binding) string {
	h := b.Help()
	return StatusKeyStyle.Render(h.Key) + " " + h.Desc
}

func (m Model) renderLoading() string {
	return InfoStyle.Render(fmt.Sprintf("Loading %s and %s…", m.incomePath, m.taxPath))
}

func (m Model) renderError() string {
	return ErrorStyle.Render("Error: ") + m.err.Error()
}

func (m Model) renderSummary() string {
	r := m.report
	var b strings.Builder

	status := "All months and bonuses recorded"
	if r.Income.IsEstimated() {
		status = fmt.Sprintf("Estimated: %d months and %d bonuses missing", r.Income.MissingMonths, r.Income.MissingBonuses)
	}
	b.WriteString(EstimateStyle(r.Income.IsEstimated()).Render(status))
	b.WriteString("\n\n")

	for _, f := range r.Figures() {
		b.WriteString(figureLine(f.Label, output.FormatYen(f.Value), MetricValueStyle))
		b.WriteString("\n")
	}
	b.WriteString(figureLine("total tax", output.FormatYen(r.TotalTax()), TotalValueStyle))

	note := ""
	if r.Income.IsEstimated() {
		note = "estimated"
	}
	cards := components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("income tax", output.FormatYen(r.IncomeTax)).WithDescription(note),
		components.NewMetricCard("resident tax", output.FormatYen(r.ResidentTax)).WithDescription(note),
		components.NewMetricCard("total tax", output.FormatYen(r.TotalTax())).WithHighlight(),
	}, m.cardColumns())

	return lipgloss.JoinVertical(lipgloss.Left, cards, BorderStyle.Render(b.String()))
}

// cardColumns stacks the summary cards when the terminal is too narrow for a row.
func (m Model) cardColumns() int {
	if m.width > 0 && m.width < 80 {
		return 1
	}
	return 3
}

func figureLine(label, value string, valueStyle lipgloss.Style) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		MetricLabelStyle.Width(36).Render(label),
		valueStyle.Width(14).Align(lipgloss.Right).Render(value),
	)
}

func (m Model) renderRecords() string {
	s := m.report.Income
	footer := SubtitleStyle.Render(fmt.Sprintf("%d of %d months, %d of %d bonuses recorded",
		s.KnownMonths, domain.MonthsPerYear, s.KnownBonuses, domain.BonusesPerYear))
	return lipgloss.JoinVertical(lipgloss.Left, BorderStyle.Render(m.records.View()), footer)
}

func (m Model) renderHelp() string {
	bindings := []struct{ key, desc string }{
		{"s / 1", "summary of the seven figures"},
		{"m / 2", "monthly records table"},
		{"tab", "next view"},
		{"↑/↓", "move in the records table"},
		{"r", "reload income and tax files"},
		{"esc", "back"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, k := range bindings {
		b.WriteString(HelpKeyStyle.Width(8).Render(k.key))
		b.WriteString(HelpDescStyle.Render(k.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("income: %s   tax: %s", m.incomePath, m.taxPath)))
	return b.String()
}
