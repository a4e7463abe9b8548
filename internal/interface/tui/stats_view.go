package tui

import (
	"fmt"
	"strings"

	"prodtrack/internal/core/models"
	"prodtrack/internal/core/stats"
)

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Today") + "\n")
	for _, c := range models.Categories() {
		minutes := m.summary.Minutes(c)
		b.WriteString(fmt.Sprintf("  %s %8s  %s\n",
			categoryStyle(c).Render(fmt.Sprintf("%-10s", c)),
			stats.FormatMinutes(minutes),
			stats.ProgressBar(minutes, m.summary.TotalProductive, 20)))
	}
	b.WriteString(fmt.Sprintf("\n  Total: %s", valueStyle.Render(stats.FormatMinutes(m.summary.TotalProductive))))
	b.WriteString(labelStyle.Render(fmt.Sprintf("   switches: %d   pseudo: %s\n",
		m.summary.ContextSwitches, stats.FormatMinutes(m.summary.PseudoProductive))))
	b.WriteString("\n")

	if m.week == nil {
		return b.String()
	}

	b.WriteString(labelStyle.Render("This week") + "\n")
	for _, d := range m.week.Days {
		b.WriteString(fmt.Sprintf("  %s  %8s  %s\n", d.Date,
			stats.FormatMinutes(d.TotalMinutes),
			stats.ProgressBar(d.TotalMinutes, 480, 20)))
	}
	b.WriteString(fmt.Sprintf("\n  Avg %.1fh/day   top %s   consistency %.0f%%\n",
		m.week.AverageDailyHours,
		categoryStyle(m.week.TopCategory).Render(string(m.week.TopCategory)),
		m.week.Consistency*100))

	return b.String()
}
