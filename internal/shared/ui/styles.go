package ui

import "github.com/charmbracelet/lipgloss"

var (
	HighlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#D9D9D9", Dark: "#383838"}
	AccentColor    = lipgloss.AdaptiveColor{Light: "#00BBFF", Dark: "#00BBFF"}
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	WarningColor   = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			MarginBottom(1)

	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedItemStyle = ItemStyle.
				Foreground(HighlightColor).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusWarningStyle = lipgloss.NewStyle().Foreground(WarningColor)

	ResultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)
)
