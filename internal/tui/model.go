package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/jptax/internal/calculation"
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/rgehrsitz/jptax/internal/output"
)

// keyMap defines the global key bindings
type keyMap struct {
	Quit    key.Binding
	Summary key.Binding
	Records key.Binding
	Next    key.Binding
	Reload  key.Binding
	Help    key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Summary: key.NewBinding(key.WithKeys("1", "s"), key.WithHelp("s", "summary")),
	Records: key.NewBinding(key.WithKeys("2", "m"), key.WithHelp("m", "records")),
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Input files
	incomePath string
	taxPath    string

	// Calculation engine and last successful result
	engine *calculation.TaxEngine
	report *domain.TaxReport

	// Per-period table for the records scene
	records table.Model

	// Error from the last run; the previous report stays visible
	err error

	// Set once the file watcher has stopped
	watchErr error

	// Loading state
	loading bool
	reloads int
}

// NewModel creates a new application model
func NewModel(incomePath, taxPath string) Model {
	return Model{
		currentScene: SceneSummary,
		incomePath:   incomePath,
		taxPath:      taxPath,
		engine:       calculation.NewTaxEngine(),
		records:      newRecordsTable(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// SetLogger sets the engine logger
func (m *Model) SetLogger(l calculation.Logger) {
	m.engine.SetLogger(l)
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return calculateCmd(m.engine, m.incomePath, m.taxPath)
}

// calculateCmd returns a command that loads both files and runs the engine
func calculateCmd(engine *calculation.TaxEngine, incomePath, taxPath string) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.RunFiles(incomePath, taxPath)
		return ReportLoadedMsg{Report: report, Err: err}
	}
}

func newRecordsTable() table.Model {
	columns := []table.Column{
		{Title: "Period", Width: 10},
		{Title: "Income", Width: 14},
		{Title: "Bonus", Width: 14},
		{Title: "Social ins.", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(ColorPrimary)
	t.SetStyles(s)
	return t
}

func recordRows(report *domain.TaxReport) []table.Row {
	rows := make([]table.Row, 0, len(report.Periods))
	for _, p := range report.Periods {
		bonus := "-"
		if p.HasBonus {
			bonus = output.FormatOptionalYen(p.Bonus)
		}
		rows = append(rows, table.Row{
			p.Period,
			output.FormatOptionalYen(p.Income),
			bonus,
			output.FormatYen(p.SocialInsurance),
		})
	}
	return rows
}
