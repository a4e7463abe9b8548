package tui

import (
	"github.com/charmbracelet/lipgloss"
	"prodtrack/internal/core/models"
)

// Global styles used across views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4CAF50"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("246"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#4CAF50")).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	jailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	pseudoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// categoryStyle returns the display style for a productivity category,
// using each category's fixed accent color
func categoryStyle(c models.Category) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Color()))
}
