package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 8; h > 3 {
			m.records.SetHeight(h)
		}
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ReloadMsg, FilesChangedMsg:
		m.loading = true
		return m, calculateCmd(m.engine, m.incomePath, m.taxPath)

	case WatchStoppedMsg:
		m.watchErr = msg.Err
		return m, nil

	case ReportLoadedMsg:
		m.loading = false
		m.reloads++
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.report = msg.Report
		m.records.SetRows(recordRows(msg.Report))
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Reload):
		return m, func() tea.Msg { return ReloadMsg{} }

	case key.Matches(msg, keys.Help):
		return m, navigate(SceneHelp)

	case key.Matches(msg, keys.Summary):
		return m, navigate(SceneSummary)

	case key.Matches(msg, keys.Records):
		return m, navigate(SceneRecords)

	case key.Matches(msg, keys.Next):
		return m, navigate((m.currentScene + 1) % (SceneHelp + 1))

	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneSummary {
			back := m.previousScene
			if back == m.currentScene {
				back = SceneSummary
			}
			return m, navigate(back)
		}
		return m, nil
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentScene == SceneRecords {
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}
	return m, nil
}
