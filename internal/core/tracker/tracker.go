package tracker

import (
	"log"
	"math"
	"sync"
	"time"

	"prodtrack/internal/core/category"
	"prodtrack/internal/core/models"
	"prodtrack/internal/core/store"
)

// WindowProber reports which window is frontmost. Implementations return
// ("Unknown", "Unknown") when inspection is unavailable; that is a valid
// sample, not an error.
type WindowProber interface {
	ActiveWindow() (app, title string)
}

// ActivityProbe reports whether the user appears active right now
type ActivityProbe interface {
	Active() bool
}

// Tracker turns the stream of window samples into session records. It is the
// sole mutator of the current-session state and the sole appender to the
// active day's record; other goroutines only read snapshots.
type Tracker struct {
	engine   *category.Engine
	store    *store.FileStore
	prober   WindowProber
	activity ActivityProbe

	idleThreshold time.Duration
	now           func() time.Time

	mu              sync.Mutex
	currentApp      string
	currentTitle    string
	sessionStart    time.Time
	sessionCategory models.Category
	sessionPseudo   bool
	lastActivity    time.Time
	today           *models.DailyRecord
}

// CurrentActivity is a read-only snapshot of the open session
type CurrentActivity struct {
	Application        string
	WindowTitle        string
	Category           models.Category
	DurationMinutes    float64
	IsPseudoProductive bool
}

// New creates a tracker. The day's record is loaded lazily on the first tick.
func New(engine *category.Engine, st *store.FileStore, prober WindowProber, activity ActivityProbe, idleThreshold time.Duration) *Tracker {
	return &Tracker{
		engine:        engine,
		store:         st,
		prober:        prober,
		activity:      activity,
		idleThreshold: idleThreshold,
		now:           time.Now,
	}
}

// Update processes one sampling tick. Called at ~1 Hz by Run.
//
// Idle ticks are skipped entirely: no session boundary is drawn, and if the
// same app is still frontmost when activity resumes, the idle gap ends up
// inside the session's duration. That approximation is inherited behavior,
// kept deliberately rather than truncating sessions retroactively.
func (t *Tracker) Update() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	if t.isIdle(now) {
		return
	}

	t.rollDay(now)

	app, title := t.prober.ActiveWindow()

	if app != t.currentApp {
		if t.currentApp != "" && !t.sessionStart.IsZero() {
			t.closeSession(now)
		}
		t.openSession(now, app, title)
	}

	t.currentApp = app
	t.currentTitle = title
}

// isIdle reports whether the user has been inactive past the threshold,
// refreshing the last-activity timestamp on any positive signal
func (t *Tracker) isIdle(now time.Time) bool {
	if t.activity.Active() {
		t.lastActivity = now
		return false
	}
	return !t.lastActivity.IsZero() && now.Sub(t.lastActivity) > t.idleThreshold
}

// rollDay loads the record for the current date, flushing the previous day's
// record when the clock crosses midnight
func (t *Tracker) rollDay(now time.Time) {
	key := now.Format(models.DateFormat)
	if t.today != nil && t.today.Date == key {
		return
	}
	if t.today != nil {
		if err := t.store.Save(t.today); err != nil {
			log.Printf("Error saving %s: %v", t.today.Date, err)
		}
	}
	t.today = t.store.Load(now)
}

// openSession starts tracking a new app. The category and pseudo-productive
// flag are resolved from the title at open time; the title may change later
// without affecting them. The context switch counts immediately, even if the
// session never reaches persistable duration.
func (t *Tracker) openSession(now time.Time, app, title string) {
	t.sessionStart = now
	t.sessionCategory = t.engine.Categorize(app, title)
	t.sessionPseudo = t.engine.IsPseudoProductive(app, title)
	t.today.CountSwitch()
}

// closeSession finalizes the open session and flushes the day's record
func (t *Tracker) closeSession(now time.Time) {
	duration := now.Sub(t.sessionStart).Minutes()

	s := models.Session{
		StartTime:          t.sessionStart,
		EndTime:            now,
		Application:        t.currentApp,
		WindowTitle:        t.currentTitle,
		Category:           t.sessionCategory,
		DurationMinutes:    round1(duration),
		IsPseudoProductive: t.sessionPseudo,
	}

	t.today.AppendSession(s)
	if s.Persistable() {
		if err := t.store.Save(t.today); err != nil {
			// In-memory record stays authoritative; the next successful
			// save flushes the latest state.
			log.Printf("Error saving %s: %v", t.today.Date, err)
		}
	}

	t.sessionStart = time.Time{}
}

// Flush closes any open session and writes the day's record. Called on
// shutdown.
func (t *Tracker) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.currentApp != "" && !t.sessionStart.IsZero() {
		t.closeSession(now)
	}
	if t.today != nil {
		if err := t.store.Save(t.today); err != nil {
			log.Printf("Error saving %s: %v", t.today.Date, err)
		}
	}
}

// Current returns a snapshot of the open session, or nil when none is open
func (t *Tracker) Current() *CurrentActivity {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentApp == "" || t.sessionStart.IsZero() {
		return nil
	}

	return &CurrentActivity{
		Application:        t.currentApp,
		WindowTitle:        t.currentTitle,
		Category:           t.sessionCategory,
		DurationMinutes:    round1(t.now().Sub(t.sessionStart).Minutes()),
		IsPseudoProductive: t.sessionPseudo,
	}
}

// RecentActivities returns display rows for today's most recent sessions
func (t *Tracker) RecentActivities(limit int) []store.ActivityRow {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.today == nil {
		t.today = t.store.Load(t.now())
	}
	return store.RecentActivities(t.today, limit)
}

// TodaySummary returns a copy of the active day's summary
func (t *Tracker) TodaySummary() models.DailySummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.today == nil {
		t.today = t.store.Load(t.now())
	}
	return t.today.Summary
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
