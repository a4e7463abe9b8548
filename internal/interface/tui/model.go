package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"prodtrack/internal/core/focus"
	"prodtrack/internal/core/models"
	"prodtrack/internal/core/stats"
	"prodtrack/internal/core/store"
	"prodtrack/internal/core/tracker"
)

type tab int

const (
	focusTab tab = iota
	activitiesTab
	statsTab
)

var tabNames = []string{"Focus", "Activities", "Statistics"}

// Model is the dashboard. It never mutates tracker state directly; it polls
// snapshots on each tick and sends commands to the focus manager.
type Model struct {
	tracker *tracker.Tracker
	focus   *focus.Manager
	calc    *stats.Calculator

	tab      tab
	width    int
	height   int
	progress progress.Model
	spinner  spinner.Model

	current   *tracker.CurrentActivity
	summary   models.DailySummary
	recent    []store.ActivityRow
	focusInfo *focus.Info
	week      *stats.WeeklyStats
}

func New(tr *tracker.Tracker, fm *focus.Manager, calc *stats.Calculator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		tracker:  tr,
		focus:    fm,
		calc:     calc,
		progress: progress.New(progress.WithDefaultGradient()),
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 12
		if m.progress.Width > 50 {
			m.progress.Width = 50
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab", "right", "l":
			m.tab = (m.tab + 1) % 3
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + 2) % 3
			return m, nil
		case "1":
			m.tab = focusTab
			return m, nil
		case "2":
			m.tab = activitiesTab
			return m, nil
		case "3":
			m.tab = statsTab
			return m, nil
		}

		if m.tab == focusTab {
			return m.updateFocusKeys(msg)
		}
		return m, nil

	case tickMsg:
		m.focus.Update()
		m.refresh()
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateFocusKeys handles focus session controls, active only on the Focus tab
func (m Model) updateFocusKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.focus.Start(focus.QuickFocus)
	case "d":
		m.focus.Start(focus.DeepWork)
	case "p":
		m.focus.Pause()
	case "r":
		m.focus.Resume()
	case "e":
		m.focus.End()
	}
	m.focusInfo = m.focus.Info()
	return m, nil
}

// refresh polls fresh snapshots from the tracker and focus manager. The
// weekly rollup reads a handful of files, so it only refreshes while the
// Statistics tab is visible.
func (m *Model) refresh() {
	m.current = m.tracker.Current()
	m.summary = m.tracker.TodaySummary()
	m.recent = m.tracker.RecentActivities(8)
	m.focusInfo = m.focus.Info()

	if m.tab == statsTab || m.week == nil {
		m.week = m.calc.Weekly(startOfWeek(time.Now()))
	}
}

func (m Model) View() string {
	header := m.viewHeader()

	var body string
	switch m.tab {
	case focusTab:
		body = m.viewFocus()
	case activitiesTab:
		body = m.viewActivities()
	case statsTab:
		body = m.viewStats()
	}

	return header + "\n\n" + body + "\n" + m.viewHelp()
}

func (m Model) viewHeader() string {
	s := titleStyle.Render("prodtrack") + "  "
	for i, name := range tabNames {
		if tab(i) == m.tab {
			s += activeTabStyle.Render(name)
		} else {
			s += tabStyle.Render(name)
		}
	}
	return s
}

func (m Model) viewHelp() string {
	base := "tab: switch view • q: quit"
	if m.tab == focusTab {
		base = "s: quick focus • d: deep work • p/r: pause/resume • e: end • " + base
	}
	return helpStyle.Render(base)
}

// startOfWeek returns the Monday of the week containing t
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
