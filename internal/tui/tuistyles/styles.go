// Package tuistyles holds the lipgloss palette shared by the TUI and the styled
// console report.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A4FCF")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("208")
	ColorDanger    = lipgloss.Color("196")
	ColorInfo      = lipgloss.Color("39")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("245")
	ColorBorder     = lipgloss.Color("240")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			PaddingLeft(1).
			PaddingRight(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusKeyStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)
	TotalValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorPrimary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// EstimateStyle marks figures derived from extrapolated income.
func EstimateStyle(estimated bool) lipgloss.Style {
	if estimated {
		return WarningStyle
	}
	return SuccessStyle
}
