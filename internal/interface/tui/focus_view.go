package tui

import (
	"fmt"
	"strings"
	"time"

	"prodtrack/internal/core/focus"
)

func (m Model) viewFocus() string {
	var b strings.Builder

	info := m.focusInfo
	if info == nil {
		b.WriteString(labelStyle.Render("No focus session running") + "\n\n")
		b.WriteString("  " + valueStyle.Render("Quick Focus") + labelStyle.Render("  25 minutes, no blocking") + "\n")
		b.WriteString("  " + valueStyle.Render("Deep Work") + labelStyle.Render("    90 minutes, distracting sites blocked") + "\n")
		return b.String()
	}

	remaining := time.Duration(info.RemainingMinutes * float64(time.Minute))

	b.WriteString(valueStyle.Render(info.Mode.String()))
	b.WriteString(labelStyle.Render("  " + info.State.String()))
	if info.JailActive {
		b.WriteString("  " + jailStyle.Render("JAIL ON"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + clockStyle.Render(focus.FormatClock(remaining)) + labelStyle.Render(" remaining") + "\n\n")
	b.WriteString("  " + m.progress.ViewAs(info.ProgressPct/100) + "\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %.1f of %.0f minutes", info.ElapsedMinutes, info.TargetMinutes)) + "\n")

	return b.String()
}
