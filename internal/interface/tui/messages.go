package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the dashboard refresh; all data polling happens on ticks
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
