package stats

import (
	"testing"
	"time"

	"prodtrack/internal/core/models"
	"prodtrack/internal/core/store"
)

func seedDay(t *testing.T, st *store.FileStore, date time.Time, category models.Category, minutes float64) {
	t.Helper()
	if minutes <= 0 {
		return
	}
	rec := st.Load(date)
	rec.CountSwitch()
	rec.AppendSession(models.Session{
		StartTime:       date.Add(9 * time.Hour),
		EndTime:         date.Add(9*time.Hour + time.Duration(minutes)*time.Minute),
		Application:     "seed",
		Category:        category,
		DurationMinutes: minutes,
	})
	if err := st.Save(rec); err != nil {
		t.Fatal(err)
	}
}

func TestWeekly(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calc := New(st)

	// Monday-anchored week with totals [0,180,0,240,0,0,60]
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	seedDay(t, st, weekStart.AddDate(0, 0, 1), models.Building, 180)
	seedDay(t, st, weekStart.AddDate(0, 0, 3), models.Studying, 240)
	seedDay(t, st, weekStart.AddDate(0, 0, 6), models.Knowledge, 60)

	w := calc.Weekly(weekStart)

	if w.Totals.TotalProductive != 480 {
		t.Errorf("total = %.1f, want 480", w.Totals.TotalProductive)
	}
	// 480/7 minutes a day is 1.14h, displayed as 1.1
	if w.AverageDailyHours != 1.1 {
		t.Errorf("average daily hours = %.2f, want 1.1", w.AverageDailyHours)
	}
	// Only the 180 and 240 minute days clear the 120 minute bar
	if w.Consistency != 0.29 {
		t.Errorf("consistency = %.2f, want 0.29", w.Consistency)
	}
	if w.BestDay == nil || w.BestDay.TotalMinutes != 240 {
		t.Errorf("best day = %+v, want the 240 minute day", w.BestDay)
	}
	if w.TopCategory != models.Studying {
		t.Errorf("top category = %v, want Studying", w.TopCategory)
	}
}

func TestWeeklyEmpty(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	w := New(st).Weekly(time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local))

	if w.BestDay != nil {
		t.Errorf("best day = %+v, want nil for an empty week", w.BestDay)
	}
	if w.AverageDailyHours != 0 || w.Consistency != 0 {
		t.Error("empty week should produce zero figures")
	}
	// Tie at zero resolves to the first category in priority order
	if w.TopCategory != models.Building {
		t.Errorf("top category = %v, want Building on all-zero tie", w.TopCategory)
	}
}

func TestTopCategoryTieBreak(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calc := New(st)

	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	seedDay(t, st, weekStart, models.Studying, 90)
	seedDay(t, st, weekStart.AddDate(0, 0, 1), models.Applying, 90)

	w := calc.Weekly(weekStart)
	if w.TopCategory != models.Studying {
		t.Errorf("top category = %v, want Studying (earlier in priority order)", w.TopCategory)
	}
}

func TestMonthly(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calc := New(st)

	// June 2025: 130 min on the 3rd (week 1), 200 min on the 10th (week 2),
	// 60 min on the 30th (partial final group)
	seedDay(t, st, time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local), models.Building, 130)
	seedDay(t, st, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), models.Building, 200)
	seedDay(t, st, time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local), models.Building, 60)

	m := calc.Monthly(2025, time.June)

	// 30 days bucket into 4 full weeks plus a 2-day remainder
	if len(m.WeekTotals) != 5 {
		t.Fatalf("week groups = %d, want 5", len(m.WeekTotals))
	}
	if m.WeekTotals[0] != 130 || m.WeekTotals[1] != 200 || m.WeekTotals[4] != 60 {
		t.Errorf("week totals = %v", m.WeekTotals)
	}
	if m.BestWeekHours != 3.3 {
		t.Errorf("best week hours = %.1f, want 3.3", m.BestWeekHours)
	}
	if m.DaysWithWork != 2 {
		t.Errorf("days with work = %d, want 2 (130 and 200 clear the bar)", m.DaysWithWork)
	}
	if m.Totals.TotalProductive != 390 {
		t.Errorf("total = %.1f, want 390", m.Totals.TotalProductive)
	}
}

func TestYearly(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calc := New(st)

	// 300 min in Feb (Q1), 600 min in July (Q3)
	seedDay(t, st, time.Date(2025, 2, 10, 0, 0, 0, 0, time.Local), models.Building, 300)
	seedDay(t, st, time.Date(2025, 7, 4, 0, 0, 0, 0, time.Local), models.Studying, 600)

	y := calc.Yearly(2025)

	if y.QuarterHours[0] != 5 {
		t.Errorf("Q1 hours = %.1f, want 5", y.QuarterHours[0])
	}
	if y.QuarterHours[2] != 10 {
		t.Errorf("Q3 hours = %.1f, want 10", y.QuarterHours[2])
	}
	if y.BestQuarterHours != 10 {
		t.Errorf("best quarter = %.1f, want 10", y.BestQuarterHours)
	}
	if y.BestMonthHours != 10 {
		t.Errorf("best month = %.1f, want 10", y.BestMonthHours)
	}
	if y.TotalHours() != 15 {
		t.Errorf("total hours = %.0f, want 15", y.TotalHours())
	}
}

func TestHours1(t *testing.T) {
	tests := []struct {
		minutes float64
		want    float64
	}{
		{0, 0},
		{60, 1},
		{90, 1.5},
		{68.57, 1.1},
		{125, 2.1},
	}
	for _, tt := range tests {
		if got := Hours1(tt.minutes); got != tt.want {
			t.Errorf("Hours1(%.2f) = %.2f, want %.2f", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{45, "45m"},
		{59.9, "59m"},
		{60, "1.0h"},
		{135, "2.2h"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%.1f) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(5, 10, 10); got != "█████░░░░░" {
		t.Errorf("ProgressBar(5,10,10) = %q", got)
	}
	if got := ProgressBar(1, 0, 4); got != "░░░░" {
		t.Errorf("ProgressBar with zero max = %q, want all empty", got)
	}
	if got := ProgressBar(20, 10, 4); got != "████" {
		t.Errorf("ProgressBar overflow = %q, want clamped full", got)
	}
}
