package interactive

import (
	"github.com/charmbracelet/lipgloss"

	"stash-client/internal/shared/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.HighlightColor).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.SubtleColor)

	promptStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			Bold(true)

	spinnerStyle = ui.SpinnerStyle
)
