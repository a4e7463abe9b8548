package stats

import (
	"fmt"
	"math"
	"strings"
	"time"

	"prodtrack/internal/core/models"
	"prodtrack/internal/core/store"
)

// ConsistencyBarMinutes is the daily productive-time bar a day must clear to
// count toward consistency and days-with-work metrics (2 hours).
const ConsistencyBarMinutes = 120

// Calculator computes read-side rollups over daily records. It never mutates
// the store.
type Calculator struct {
	store *store.FileStore
}

// New creates a calculator over the given store
func New(st *store.FileStore) *Calculator {
	return &Calculator{store: st}
}

// DaySummary is one day's contribution to a weekly rollup
type DaySummary struct {
	Date         string
	TotalMinutes float64
}

// WeeklyStats is the rollup of 7 consecutive days
type WeeklyStats struct {
	WeekStart         string
	Totals            models.DailySummary
	Days              []DaySummary
	BestDay           *DaySummary
	AverageDailyHours float64
	TopCategory       models.Category
	Consistency       float64
}

// MonthlyStats is the rollup of one calendar month
type MonthlyStats struct {
	Year          int
	Month         time.Month
	Totals        models.DailySummary
	WeekTotals    []float64 // minutes per 7-day group, final group may be partial
	BestWeekHours float64
	TopCategory   models.Category
	DaysWithWork  int
}

// YearlyStats is the rollup of one calendar year
type YearlyStats struct {
	Year             int
	Totals           models.DailySummary
	QuarterHours     [4]float64
	MonthHours       [12]float64
	BestMonthHours   float64
	BestQuarterHours float64
}

// Weekly sums the 7 days starting at weekStart. Missing days are empty.
func (c *Calculator) Weekly(weekStart time.Time) *WeeklyStats {
	records := c.store.LoadRange(weekStart, 7)

	w := &WeeklyStats{
		WeekStart: weekStart.Format(models.DateFormat),
		Days:      make([]DaySummary, 0, 7),
	}

	for _, rec := range records {
		sum := rec.Summary
		w.Days = append(w.Days, DaySummary{Date: rec.Date, TotalMinutes: sum.TotalProductive})
		addSummary(&w.Totals, &sum)
	}

	for i := range w.Days {
		if w.BestDay == nil || w.Days[i].TotalMinutes > w.BestDay.TotalMinutes {
			w.BestDay = &w.Days[i]
		}
	}
	if w.BestDay != nil && w.BestDay.TotalMinutes == 0 {
		w.BestDay = nil
	}

	w.AverageDailyHours = Hours1(w.Totals.TotalProductive / 7)
	w.TopCategory = topCategory(&w.Totals)
	w.Consistency = consistency(w.Days)

	return w
}

// Monthly sums every calendar day of the month, grouping days into
// consecutive 7-day buckets for the best-week figure
func (c *Calculator) Monthly(year int, month time.Month) *MonthlyStats {
	records := c.store.LoadMonth(year, month)

	m := &MonthlyStats{Year: year, Month: month}

	var week float64
	daysInWeek := 0
	for _, rec := range records {
		sum := rec.Summary
		addSummary(&m.Totals, &sum)

		week += sum.TotalProductive
		daysInWeek++
		if daysInWeek == 7 {
			m.WeekTotals = append(m.WeekTotals, week)
			week, daysInWeek = 0, 0
		}

		if sum.TotalProductive > ConsistencyBarMinutes {
			m.DaysWithWork++
		}
	}
	if daysInWeek > 0 {
		m.WeekTotals = append(m.WeekTotals, week)
	}

	best := 0.0
	for _, w := range m.WeekTotals {
		if w > best {
			best = w
		}
	}
	m.BestWeekHours = Hours1(best)
	m.TopCategory = topCategory(&m.Totals)

	return m
}

// Yearly sums 12 months, bucketing into quarters
func (c *Calculator) Yearly(year int) *YearlyStats {
	y := &YearlyStats{Year: year}

	for month := time.January; month <= time.December; month++ {
		records := c.store.LoadMonth(year, month)

		var monthMinutes float64
		for _, rec := range records {
			sum := rec.Summary
			addSummary(&y.Totals, &sum)
			monthMinutes += sum.TotalProductive
		}

		y.MonthHours[month-1] = Hours1(monthMinutes)
		y.QuarterHours[(month-1)/3] += monthMinutes
	}

	for q := range y.QuarterHours {
		y.QuarterHours[q] = Hours1(y.QuarterHours[q])
		if y.QuarterHours[q] > y.BestQuarterHours {
			y.BestQuarterHours = y.QuarterHours[q]
		}
	}
	for _, h := range y.MonthHours {
		if h > y.BestMonthHours {
			y.BestMonthHours = h
		}
	}

	return y
}

// TotalHours returns the year's productive total in whole hours
func (y *YearlyStats) TotalHours() float64 {
	return math.Round(y.Totals.TotalProductive / 60)
}

func addSummary(dst, src *models.DailySummary) {
	dst.Building += src.Building
	dst.Studying += src.Studying
	dst.Applying += src.Applying
	dst.Knowledge += src.Knowledge
	dst.PseudoProductive += src.PseudoProductive
	dst.ContextSwitches += src.ContextSwitches
	dst.TotalProductive += src.TotalProductive
}

// topCategory is an argmax over the four categories; ties resolve to the
// earlier category in the fixed priority order
func topCategory(sum *models.DailySummary) models.Category {
	best := models.Building
	for _, c := range models.Categories() {
		if sum.Minutes(c) > sum.Minutes(best) {
			best = c
		}
	}
	return best
}

// consistency is the fraction of days clearing the productive-time bar,
// rounded to 2 decimals
func consistency(days []DaySummary) float64 {
	if len(days) == 0 {
		return 0
	}
	cleared := 0
	for _, d := range days {
		if d.TotalMinutes > ConsistencyBarMinutes {
			cleared++
		}
	}
	return math.Round(float64(cleared)/float64(len(days))*100) / 100
}

// Hours1 converts minutes to hours rounded to 1 decimal. All minute totals
// cross this boundary before display or export.
func Hours1(minutes float64) float64 {
	return math.Round(minutes/60*10) / 10
}

// FormatMinutes renders a minute total the way the dashboard shows it:
// whole minutes under an hour, tenths of hours above
func FormatMinutes(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", int(minutes))
	}
	return fmt.Sprintf("%.1fh", minutes/60)
}

// ProgressBar renders an ASCII bar of the given width
func ProgressBar(value, max float64, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
