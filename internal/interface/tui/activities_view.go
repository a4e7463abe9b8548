package tui

import (
	"fmt"
	"strings"

	"prodtrack/internal/core/models"
)

const maxTitleWidth = 48

func (m Model) viewActivities() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Current activity") + "\n")
	if m.current == nil {
		b.WriteString("  (idle)\n")
	} else {
		b.WriteString("  " + m.spinner.View())
		b.WriteString(fmt.Sprintf(" %s  %s  %.1fm",
			valueStyle.Render(m.current.Application),
			categoryStyle(m.current.Category).Render(string(m.current.Category)),
			m.current.DurationMinutes))
		if m.current.IsPseudoProductive {
			b.WriteString("  " + pseudoStyle.Render("pseudo-productive"))
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  "+truncate(m.current.WindowTitle, maxTitleWidth)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Recent sessions") + "\n")
	if len(m.recent) == 0 {
		b.WriteString("  (none yet today)\n")
		return b.String()
	}
	for _, row := range m.recent {
		b.WriteString(fmt.Sprintf("  %s–%s  %s  %5.1fm  %s\n",
			row.StartTime, row.EndTime,
			categoryStyle(models.Category(row.Category)).Render(fmt.Sprintf("%-9s", row.Category)),
			row.DurationMinutes,
			truncate(row.Label, maxTitleWidth)))
	}

	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
