package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("241")
	colorDanger  = lipgloss.Color("196")
	colorBorder  = lipgloss.Color("238")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	resultLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(26)

	resultValueStyle = lipgloss.NewStyle().
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
