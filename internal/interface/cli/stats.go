package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/models"
	"prodtrack/internal/core/stats"
	"prodtrack/internal/core/store"
)

var (
	statsWeek  bool
	statsMonth bool
	statsYear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [date]",
	Short: "Show productivity statistics",
	Long: `Display productivity statistics for a day, week, month, or year.

The optional date argument accepts natural language ("yesterday",
"last monday") as well as standard formats (2025-06-01).

Examples:
  prodtrack stats                 # today
  prodtrack stats yesterday
  prodtrack stats --week          # week containing today
  prodtrack stats --month 2025-06-01
  prodtrack stats --year`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsWeek, "week", false, "Weekly statistics")
	statsCmd.Flags().BoolVar(&statsMonth, "month", false, "Monthly statistics")
	statsCmd.Flags().BoolVar(&statsYear, "year", false, "Yearly statistics")
}

func runStats(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	date := time.Now()
	if len(args) > 0 {
		parsed := parseDateArg(args[0])
		if parsed == nil {
			return fmt.Errorf("could not parse date %q", args[0])
		}
		date = *parsed
	}

	calc := stats.New(st)

	switch {
	case statsWeek:
		printWeekly(calc.Weekly(startOfWeek(date)))
	case statsMonth:
		printMonthly(calc.Monthly(date.Year(), date.Month()))
	case statsYear:
		printYearly(calc.Yearly(date.Year()))
	default:
		printDaily(st, date)
	}
	return nil
}

// parseDateArg attempts natural language parsing first, then fixed layouts
func parseDateArg(arg string) *time.Time {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(arg, time.Now())
	if err == nil && result != nil {
		return &result.Time
	}

	formats := []string{
		models.DateFormat,
		"2006/01/02",
		"01/02/2006",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, arg); err == nil {
			return &t
		}
	}
	return nil
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

func printDaily(st *store.FileStore, date time.Time) {
	rec := st.Load(date)
	sum := rec.Summary

	fmt.Printf("Daily Statistics — %s\n", rec.Date)
	fmt.Println(strings.Repeat("=", 32))
	fmt.Println()

	for _, c := range models.Categories() {
		fmt.Printf("  %-12s %8s  %s\n", c, stats.FormatMinutes(sum.Minutes(c)),
			stats.ProgressBar(sum.Minutes(c), sum.TotalProductive, 20))
	}
	fmt.Println()
	fmt.Printf("  Total productive:   %s\n", stats.FormatMinutes(sum.TotalProductive))
	fmt.Printf("  Pseudo-productive:  %s\n", stats.FormatMinutes(sum.PseudoProductive))
	fmt.Printf("  Context switches:   %d\n", sum.ContextSwitches)

	rows := store.RecentActivities(rec, 10)
	if len(rows) > 0 {
		fmt.Println()
		fmt.Println("Recent activities:")
		for _, row := range rows {
			fmt.Printf("  %s–%s  %-10s %6.1fm  %s\n",
				row.StartTime, row.EndTime, row.Category, row.DurationMinutes, row.Label)
		}
	}
}

func printWeekly(w *stats.WeeklyStats) {
	fmt.Printf("Weekly Statistics — week of %s\n", w.WeekStart)
	fmt.Println(strings.Repeat("=", 36))
	fmt.Println()

	for _, d := range w.Days {
		fmt.Printf("  %s  %8s  %s\n", d.Date, stats.FormatMinutes(d.TotalMinutes),
			stats.ProgressBar(d.TotalMinutes, 480, 20))
	}
	fmt.Println()
	fmt.Printf("  Total:         %s\n", stats.FormatMinutes(w.Totals.TotalProductive))
	fmt.Printf("  Daily average: %.1fh\n", w.AverageDailyHours)
	fmt.Printf("  Top category:  %s\n", w.TopCategory)
	fmt.Printf("  Consistency:   %.0f%% of days over 2h\n", w.Consistency*100)
	if w.BestDay != nil {
		fmt.Printf("  Best day:      %s (%s)\n", w.BestDay.Date, stats.FormatMinutes(w.BestDay.TotalMinutes))
	}
}

func printMonthly(m *stats.MonthlyStats) {
	fmt.Printf("Monthly Statistics — %s %d\n", m.Month, m.Year)
	fmt.Println(strings.Repeat("=", 36))
	fmt.Println()

	for i, minutes := range m.WeekTotals {
		fmt.Printf("  Week %d  %8s  %s\n", i+1, stats.FormatMinutes(minutes),
			stats.ProgressBar(minutes, 2400, 20))
	}
	fmt.Println()
	fmt.Printf("  Total:          %s\n", stats.FormatMinutes(m.Totals.TotalProductive))
	fmt.Printf("  Best week:      %.1fh\n", m.BestWeekHours)
	fmt.Printf("  Top category:   %s\n", m.TopCategory)
	fmt.Printf("  Days with work: %d\n", m.DaysWithWork)
}

func printYearly(y *stats.YearlyStats) {
	fmt.Printf("Yearly Statistics — %d\n", y.Year)
	fmt.Println(strings.Repeat("=", 32))
	fmt.Println()

	for q, hours := range y.QuarterHours {
		fmt.Printf("  Q%d  %7.1fh  %s\n", q+1, hours,
			stats.ProgressBar(hours, y.BestQuarterHours, 20))
	}
	fmt.Println()
	for month := time.January; month <= time.December; month++ {
		fmt.Printf("  %-9s %7.1fh\n", month, y.MonthHours[month-1])
	}
	fmt.Println()
	fmt.Printf("  Total:        %.0fh\n", y.TotalHours())
	fmt.Printf("  Best month:   %.1fh\n", y.BestMonthHours)
	fmt.Printf("  Best quarter: %.1fh\n", y.BestQuarterHours)
}
