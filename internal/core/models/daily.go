package models

import "time"

// DateFormat is the canonical key for daily records. Lexicographic order of
// formatted dates matches chronological order, which the store relies on for
// range queries.
const DateFormat = "2006-01-02"

// DailySummary holds per-category minute totals for one day. Pseudo-productive
// minutes are tracked separately and excluded from TotalProductive.
type DailySummary struct {
	Building         float64 `json:"building"`
	Studying         float64 `json:"studying"`
	Applying         float64 `json:"applying"`
	Knowledge        float64 `json:"knowledge"`
	PseudoProductive float64 `json:"pseudo_productive"`
	ContextSwitches  int     `json:"context_switches"`
	TotalProductive  float64 `json:"total_productive"`
}

// Minutes returns the productive minutes logged for a category
func (d *DailySummary) Minutes(c Category) float64 {
	switch c {
	case Building:
		return d.Building
	case Studying:
		return d.Studying
	case Applying:
		return d.Applying
	case Knowledge:
		return d.Knowledge
	}
	return 0
}

func (d *DailySummary) add(c Category, minutes float64) {
	switch c {
	case Building:
		d.Building += minutes
	case Studying:
		d.Studying += minutes
	case Applying:
		d.Applying += minutes
	case Knowledge:
		d.Knowledge += minutes
	}
	d.TotalProductive += minutes
}

// DailyRecord is the persisted aggregate for one calendar date
type DailyRecord struct {
	Date     string       `json:"date"`
	Sessions []Session    `json:"sessions"`
	Summary  DailySummary `json:"daily_summary"`
}

// NewDailyRecord returns an empty record for the given date
func NewDailyRecord(date time.Time) *DailyRecord {
	return &DailyRecord{
		Date:     date.Format(DateFormat),
		Sessions: []Session{},
	}
}

// CountSwitch registers a context switch. Called when a session opens, so
// every attempted switch counts even if the session never reaches the
// persistable duration.
func (r *DailyRecord) CountSwitch() {
	r.Summary.ContextSwitches++
}

// AppendSession logs a completed session and folds its duration into the
// daily summary. Sessions at or below the minimum duration are dropped.
// Pseudo-productive time goes into its own bucket instead of the session's
// category, keeping total_productive equal to the sum of the four categories.
func (r *DailyRecord) AppendSession(s Session) {
	if !s.Persistable() {
		return
	}

	r.Sessions = append(r.Sessions, s)

	if s.IsPseudoProductive {
		r.Summary.PseudoProductive += s.DurationMinutes
		return
	}
	r.Summary.add(s.Category, s.DurationMinutes)
}
