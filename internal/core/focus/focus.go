package focus

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"
)

// Mode selects the focus session length
type Mode int

const (
	QuickFocus Mode = iota // 25 minutes
	DeepWork               // 90 minutes, with automatic distraction enforcement
)

// Duration returns the fixed target length for the mode. Lengths are part of
// the contract; callers only choose which mode to pass.
func (m Mode) Duration() time.Duration {
	if m == DeepWork {
		return 90 * time.Minute
	}
	return 25 * time.Minute
}

func (m Mode) String() string {
	if m == DeepWork {
		return "Deep Work"
	}
	return "Quick Focus"
}

// State is the focus session lifecycle state
type State int

const (
	Inactive State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Completed:
		return "Completed"
	}
	return "Inactive"
}

// Enforcer is the external distraction-blocking capability. Start failures
// are non-fatal to the focus session.
type Enforcer interface {
	Start(durationHours float64) error
	Stop() error
}

// Summary describes a finished focus session
type Summary struct {
	Mode          Mode
	StartTime     time.Time
	EndTime       time.Time
	TotalMinutes  float64
	ActiveMinutes float64
	CompletionPct int
	JailActive    bool
}

// Info is a polling snapshot of the session for the presentation layer
type Info struct {
	Mode             Mode
	State            State
	ElapsedMinutes   float64
	RemainingMinutes float64
	ProgressPct      float64
	TargetMinutes    float64
	JailActive       bool
}

// Manager is the focus session state machine. Transitions happen only
// through Start/Pause/Resume/Update/End.
type Manager struct {
	enforcer Enforcer
	notify   func(title, message string)
	now      func() time.Time

	mu          sync.Mutex
	mode        Mode
	state       State
	startTime   time.Time
	pauseStart  time.Time
	pausedTotal time.Duration
	jailActive  bool
}

// New creates a manager. The enforcer may be nil, in which case Deep Work
// sessions run without the blocking side effect.
func New(enforcer Enforcer) *Manager {
	return &Manager{
		enforcer: enforcer,
		notify:   notifyDesktop,
		now:      time.Now,
	}
}

// Start begins a new session, implicitly ending any session already in
// progress. Deep Work requests enforcement for the session length; if that
// fails the session still runs, observably without the jail.
func (m *Manager) Start(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Running || m.state == Paused {
		m.finish(m.now())
	}

	m.mode = mode
	m.state = Running
	m.startTime = m.now()
	m.pauseStart = time.Time{}
	m.pausedTotal = 0
	m.jailActive = false

	if mode == DeepWork && m.enforcer != nil {
		hours := mode.Duration().Hours()
		if err := m.enforcer.Start(hours); err != nil {
			log.Printf("Enforcement failed to start: %v", err)
		} else {
			m.jailActive = true
			log.Printf("Jail mode active for %.1f hours", hours)
		}
	}
}

// Pause suspends a running session. Only valid from Running.
func (m *Manager) Pause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Running {
		return false
	}
	m.state = Paused
	m.pauseStart = m.now()
	return true
}

// Resume continues a paused session, folding the pause into the accumulator
// so elapsed time excludes it. Only valid from Paused.
func (m *Manager) Resume() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Paused || m.pauseStart.IsZero() {
		return false
	}
	m.state = Running
	m.pausedTotal += m.now().Sub(m.pauseStart)
	m.pauseStart = time.Time{}
	return true
}

// Update is the periodic tick. When a running session reaches its target it
// auto-completes, returning the final summary; otherwise nil.
func (m *Manager) Update() *Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Running {
		return nil
	}

	now := m.now()
	elapsed := now.Sub(m.startTime) - m.pausedTotal
	if elapsed < m.mode.Duration() {
		return nil
	}

	summary := m.finish(now)
	if m.notify != nil {
		m.notify("Focus session complete", fmt.Sprintf("%s finished: %.1f active minutes", summary.Mode, summary.ActiveMinutes))
	}
	return summary
}

// End stops the session early. Valid from Running or Paused.
func (m *Manager) End() *Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Running && m.state != Paused {
		return nil
	}
	return m.finish(m.now())
}

// finish closes out the session: stops enforcement, computes active minutes
// excluding pauses, and transitions to Completed. Caller holds the lock.
func (m *Manager) finish(now time.Time) *Summary {
	if m.state == Paused && !m.pauseStart.IsZero() {
		m.pausedTotal += now.Sub(m.pauseStart)
		m.pauseStart = time.Time{}
	}

	if m.jailActive && m.enforcer != nil {
		if err := m.enforcer.Stop(); err != nil {
			log.Printf("Error stopping enforcement: %v", err)
		}
		m.jailActive = false
	}

	total := now.Sub(m.startTime)
	active := total - m.pausedTotal
	target := m.mode.Duration().Minutes()

	summary := &Summary{
		Mode:          m.mode,
		StartTime:     m.startTime,
		EndTime:       now,
		TotalMinutes:  round1(total.Minutes()),
		ActiveMinutes: round1(active.Minutes()),
		CompletionPct: completionPct(active.Minutes(), target),
	}

	m.state = Completed
	log.Printf("Focus session completed: %s - %.1fm active (%d%%)", summary.Mode, summary.ActiveMinutes, summary.CompletionPct)

	return summary
}

// Info returns a snapshot of the session, or nil when Inactive
func (m *Manager) Info() *Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Inactive {
		return nil
	}

	now := m.now()
	var elapsed time.Duration
	switch m.state {
	case Running:
		elapsed = now.Sub(m.startTime) - m.pausedTotal
	case Paused:
		elapsed = m.pauseStart.Sub(m.startTime) - m.pausedTotal
	}

	target := m.mode.Duration()
	remaining := target - elapsed
	if remaining < 0 {
		remaining = 0
	}

	progress := 0.0
	if target > 0 {
		progress = math.Min(100, elapsed.Minutes()/target.Minutes()*100)
	}

	return &Info{
		Mode:             m.mode,
		State:            m.state,
		ElapsedMinutes:   round1(elapsed.Minutes()),
		RemainingMinutes: round1(remaining.Minutes()),
		ProgressPct:      round1(progress),
		TargetMinutes:    target.Minutes(),
		JailActive:       m.jailActive,
	}
}

// FormatClock renders a duration as MM:SS for the countdown display
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func completionPct(activeMinutes, targetMinutes float64) int {
	pct := int(math.Round(activeMinutes / targetMinutes * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
