package tui

import (
	"github.com/rgehrsitz/jptax/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSummary Scene = iota
	SceneRecords
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneSummary:
		return "Summary"
	case SceneRecords:
		return "Monthly records"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ReloadMsg asks the model to reload both input files and recalculate
type ReloadMsg struct{}

// FilesChangedMsg is sent by an external file watcher when an input file changed
type FilesChangedMsg struct {
	Path string
}

// WatchStoppedMsg is sent when the external file watcher exits with an error
type WatchStoppedMsg struct {
	Err error
}

// ReportLoadedMsg carries the result of a calculation run
type ReportLoadedMsg struct {
	Report *domain.TaxReport
	Err    error
}
