package tui

import "github.com/rgehrsitz/jptax/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	// Colors
	ColorPrimary = tuistyles.ColorPrimary
	ColorBorder  = tuistyles.ColorBorder
	ColorMuted   = tuistyles.ColorMuted

	// Base styles
	AppStyle         = tuistyles.AppStyle
	TitleStyle       = tuistyles.TitleStyle
	SubtitleStyle    = tuistyles.SubtitleStyle
	StatusBarStyle   = tuistyles.StatusBarStyle
	StatusKeyStyle   = tuistyles.StatusKeyStyle
	BorderStyle      = tuistyles.BorderStyle
	MetricLabelStyle = tuistyles.MetricLabelStyle
	MetricValueStyle = tuistyles.MetricValueStyle
	TotalValueStyle  = tuistyles.TotalValueStyle
	ErrorStyle       = tuistyles.ErrorStyle
	WarningStyle     = tuistyles.WarningStyle
	InfoStyle        = tuistyles.InfoStyle
	HelpKeyStyle     = tuistyles.HelpKeyStyle
	HelpDescStyle    = tuistyles.HelpDescStyle
)

// Re-export helper functions
var (
	EstimateStyle = tuistyles.EstimateStyle
)
