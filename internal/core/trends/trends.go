package trends

import (
	"fmt"
	"math"
	"time"

	"prodtrack/internal/core/models"
	"prodtrack/internal/core/stats"
)

// Thresholds for insight generation
const (
	growthInsightPct   = 10
	improvedInsightPct = 20
)

// Analyzer compares rollups across adjacent periods
type Analyzer struct {
	calc *stats.Calculator
	now  func() time.Time
}

// New creates an analyzer over the given calculator
func New(calc *stats.Calculator) *Analyzer {
	return &Analyzer{calc: calc, now: time.Now}
}

// WeekTrend is one week's figures in a trend series
type WeekTrend struct {
	WeekStart   string
	TotalHours  float64
	Building    float64
	Studying    float64
	Applying    float64
	Knowledge   float64
	Consistency float64
}

// CategoryImprovement names the category with the largest week-over-week gain
type CategoryImprovement struct {
	Category  models.Category
	ChangePct float64
}

// WeeklyTrends is a most-recent-first series with growth figures
type WeeklyTrends struct {
	Weeks              []WeekTrend
	GrowthPct          float64
	Direction          string // "up", "down", or "stable"
	AverageWeeklyHours float64
	MostImproved       *CategoryImprovement
}

// MonthTrend is one month's figures in a trend series
type MonthTrend struct {
	Month        string // YYYY-MM
	TotalHours   float64
	Building     float64
	Studying     float64
	Applying     float64
	Knowledge    float64
	DaysWithWork int
}

// MonthlyTrends is a most-recent-first series with consistency direction
type MonthlyTrends struct {
	Months              []MonthTrend
	AverageMonthlyHours float64
	BestMonth           *MonthTrend
	ConsistencyTrend    string // "improving", "declining", "stable", "insufficient_data"
}

// Prediction is a linear extrapolation of the month's productive hours
type Prediction struct {
	CurrentHours   float64
	PredictedHours float64
	DailyAverage   float64
	DaysRemaining  int
}

// Weekly computes the last n weeks, most recent first. Growth compares the
// latest week to the one before it; a zero previous week yields 0 rather
// than a division error.
func (a *Analyzer) Weekly(weeksBack int) *WeeklyTrends {
	now := a.now()

	t := &WeeklyTrends{}
	for i := 0; i < weeksBack; i++ {
		weekStart := startOfWeek(now).AddDate(0, 0, -7*i)
		w := a.calc.Weekly(weekStart)

		t.Weeks = append(t.Weeks, WeekTrend{
			WeekStart:   w.WeekStart,
			TotalHours:  stats.Hours1(w.Totals.TotalProductive),
			Building:    stats.Hours1(w.Totals.Building),
			Studying:    stats.Hours1(w.Totals.Studying),
			Applying:    stats.Hours1(w.Totals.Applying),
			Knowledge:   stats.Hours1(w.Totals.Knowledge),
			Consistency: w.Consistency,
		})
	}

	if len(t.Weeks) >= 2 {
		latest, previous := t.Weeks[0], t.Weeks[1]
		t.GrowthPct = pctChange(previous.TotalHours, latest.TotalHours)
		switch {
		case t.GrowthPct > 0:
			t.Direction = "up"
		case t.GrowthPct < 0:
			t.Direction = "down"
		default:
			t.Direction = "stable"
		}
		t.MostImproved = mostImproved(latest, previous)
	}

	var sum float64
	for _, w := range t.Weeks {
		sum += w.TotalHours
	}
	if len(t.Weeks) > 0 {
		t.AverageWeeklyHours = round1(sum / float64(len(t.Weeks)))
	}

	return t
}

// Monthly computes the last n months, most recent first
func (a *Analyzer) Monthly(monthsBack int) *MonthlyTrends {
	now := a.now()

	t := &MonthlyTrends{}
	year, month := now.Year(), now.Month()
	for i := 0; i < monthsBack; i++ {
		m := a.calc.Monthly(year, month)

		t.Months = append(t.Months, MonthTrend{
			Month:        fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
			TotalHours:   stats.Hours1(m.Totals.TotalProductive),
			Building:     stats.Hours1(m.Totals.Building),
			Studying:     stats.Hours1(m.Totals.Studying),
			Applying:     stats.Hours1(m.Totals.Applying),
			Knowledge:    stats.Hours1(m.Totals.Knowledge),
			DaysWithWork: m.DaysWithWork,
		})

		month--
		if month == 0 {
			month = time.December
			year--
		}
	}

	var sum float64
	for i := range t.Months {
		sum += t.Months[i].TotalHours
		if t.BestMonth == nil || t.Months[i].TotalHours > t.BestMonth.TotalHours {
			t.BestMonth = &t.Months[i]
		}
	}
	if len(t.Months) > 0 {
		t.AverageMonthlyHours = round1(sum / float64(len(t.Months)))
	}
	t.ConsistencyTrend = consistencyTrend(t.Months)

	return t
}

// Insights assembles up to 3 human-readable observations, falling back to a
// generic message when nothing crosses a threshold
func (a *Analyzer) Insights() []string {
	var insights []string

	weekly := a.Weekly(4)
	if len(weekly.Weeks) >= 2 {
		if weekly.GrowthPct > growthInsightPct {
			insights = append(insights, fmt.Sprintf("Great progress! Up %.1f%% from last week", weekly.GrowthPct))
		} else if weekly.GrowthPct < -growthInsightPct {
			insights = append(insights, fmt.Sprintf("Productivity down %.1f%% from last week", math.Abs(weekly.GrowthPct)))
		}
	}

	if weekly.MostImproved != nil && weekly.MostImproved.ChangePct > improvedInsightPct {
		insights = append(insights, fmt.Sprintf("%s time up %.1f%%!", weekly.MostImproved.Category, weekly.MostImproved.ChangePct))
	}

	monthly := a.Monthly(6)
	switch monthly.ConsistencyTrend {
	case "improving":
		insights = append(insights, "Your consistency is improving month over month")
	case "declining":
		insights = append(insights, "Consider focusing on more consistent daily habits")
	}

	if len(insights) == 0 {
		insights = append(insights, "Keep tracking to see your progress trends")
	}
	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

// PredictMonthEnd extrapolates the month's total from the pace so far.
// Returns nil when no days have elapsed yet.
func (a *Analyzer) PredictMonthEnd() *Prediction {
	now := a.now()
	daysElapsed := now.Day()
	if daysElapsed == 0 {
		return nil
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	daysRemaining := daysInMonth - daysElapsed

	m := a.calc.Monthly(now.Year(), now.Month())
	currentHours := m.Totals.TotalProductive / 60

	dailyAverage := currentHours / float64(daysElapsed)
	return &Prediction{
		CurrentHours:   round1(currentHours),
		PredictedHours: round1(currentHours + dailyAverage*float64(daysRemaining)),
		DailyAverage:   round1(dailyAverage),
		DaysRemaining:  daysRemaining,
	}
}

// CategoryComparison is a week-over-week delta for one bucket
type CategoryComparison struct {
	CurrentHours  float64
	PreviousHours float64
	ChangePct     float64
	Direction     string
}

// WeeklyComparison compares this week's buckets to last week's. A zero
// previous value reads as +100% when there is any current time, else 0.
func (a *Analyzer) WeeklyComparison() map[string]CategoryComparison {
	now := a.now()
	thisWeek := a.calc.Weekly(startOfWeek(now))
	lastWeek := a.calc.Weekly(startOfWeek(now).AddDate(0, 0, -7))

	comparison := make(map[string]CategoryComparison)

	compare := func(key string, current, previous float64) {
		cur, prev := current/60, previous/60
		var change float64
		if prev > 0 {
			change = (cur - prev) / prev * 100
		} else if cur > 0 {
			change = 100
		}
		direction := "same"
		if change > 0 {
			direction = "up"
		} else if change < 0 {
			direction = "down"
		}
		comparison[key] = CategoryComparison{
			CurrentHours:  round1(cur),
			PreviousHours: round1(prev),
			ChangePct:     round1(change),
			Direction:     direction,
		}
	}

	for _, c := range models.Categories() {
		compare(string(c), thisWeek.Totals.Minutes(c), lastWeek.Totals.Minutes(c))
	}
	compare("Total", thisWeek.Totals.TotalProductive, lastWeek.Totals.TotalProductive)

	return comparison
}

// mostImproved picks the category with the largest percentage gain, skipping
// categories with no time in the previous week
func mostImproved(latest, previous WeekTrend) *CategoryImprovement {
	pairs := []struct {
		category models.Category
		latest   float64
		previous float64
	}{
		{models.Building, latest.Building, previous.Building},
		{models.Studying, latest.Studying, previous.Studying},
		{models.Applying, latest.Applying, previous.Applying},
		{models.Knowledge, latest.Knowledge, previous.Knowledge},
	}

	var best *CategoryImprovement
	for _, p := range pairs {
		if p.previous <= 0 {
			continue
		}
		change := round1((p.latest - p.previous) / p.previous * 100)
		if best == nil || change > best.ChangePct {
			best = &CategoryImprovement{Category: p.category, ChangePct: change}
		}
	}
	return best
}

// consistencyTrend compares the average days-with-work of the 3 most recent
// months against the 3 before them, with a 10% band for "stable"
func consistencyTrend(months []MonthTrend) string {
	if len(months) < 3 {
		return "insufficient_data"
	}

	recent := months[:3]
	older := months[3:]
	if len(older) > 3 {
		older = older[:3]
	}
	if len(older) == 0 {
		return "insufficient_data"
	}

	var recentSum, olderSum float64
	for _, m := range recent {
		recentSum += float64(m.DaysWithWork)
	}
	for _, m := range older {
		olderSum += float64(m.DaysWithWork)
	}
	recentAvg := recentSum / float64(len(recent))
	olderAvg := olderSum / float64(len(older))

	switch {
	case recentAvg > olderAvg*1.1:
		return "improving"
	case recentAvg < olderAvg*0.9:
		return "declining"
	default:
		return "stable"
	}
}

// pctChange guards the zero-base case: growth from nothing reads as 0
func pctChange(previous, latest float64) float64 {
	if previous <= 0 {
		return 0
	}
	return round1((latest - previous) / previous * 100)
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

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
