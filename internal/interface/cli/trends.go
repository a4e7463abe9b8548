package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"prodtrack/internal/core/stats"
	"prodtrack/internal/core/trends"
)

var (
	trendsWeeks  int
	trendsMonths int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show productivity trends over time",
	Long: `Compare recent weeks and months against earlier ones.

Shows week-over-week growth, the most improved category, monthly
consistency direction, a month-end prediction, and insights.`,
	RunE: runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().IntVar(&trendsWeeks, "weeks", 4, "Number of weeks to analyze")
	trendsCmd.Flags().IntVar(&trendsMonths, "months", 6, "Number of months to analyze")
}

func runTrends(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	analyzer := trends.New(stats.New(st))

	weekly := analyzer.Weekly(trendsWeeks)
	fmt.Printf("Weekly Trends (last %d weeks)\n", trendsWeeks)
	fmt.Println(strings.Repeat("=", 32))
	for _, w := range weekly.Weeks {
		fmt.Printf("  %s  %6.1fh  (B %.1f / S %.1f / A %.1f / K %.1f)\n",
			w.WeekStart, w.TotalHours, w.Building, w.Studying, w.Applying, w.Knowledge)
	}
	fmt.Println()
	fmt.Printf("  Growth:         %+.1f%% (%s)\n", weekly.GrowthPct, weekly.Direction)
	fmt.Printf("  Weekly average: %.1fh\n", weekly.AverageWeeklyHours)
	if weekly.MostImproved != nil {
		fmt.Printf("  Most improved:  %s (%+.1f%%)\n", weekly.MostImproved.Category, weekly.MostImproved.ChangePct)
	}
	fmt.Println()

	monthly := analyzer.Monthly(trendsMonths)
	fmt.Printf("Monthly Trends (last %d months)\n", trendsMonths)
	fmt.Println(strings.Repeat("=", 32))
	for _, m := range monthly.Months {
		fmt.Printf("  %s  %6.1fh  %2d days with work\n", m.Month, m.TotalHours, m.DaysWithWork)
	}
	fmt.Println()
	fmt.Printf("  Monthly average: %.1fh\n", monthly.AverageMonthlyHours)
	if monthly.BestMonth != nil {
		fmt.Printf("  Best month:      %s (%.1fh)\n", monthly.BestMonth.Month, monthly.BestMonth.TotalHours)
	}
	fmt.Printf("  Consistency:     %s\n", strings.ReplaceAll(monthly.ConsistencyTrend, "_", " "))
	fmt.Println()

	if p := analyzer.PredictMonthEnd(); p != nil {
		fmt.Println("Month-End Prediction")
		fmt.Println(strings.Repeat("=", 32))
		fmt.Printf("  So far:          %.1fh\n", p.CurrentHours)
		fmt.Printf("  Daily average:   %.1fh\n", p.DailyAverage)
		fmt.Printf("  Predicted total: %.1fh (%d days remaining)\n", p.PredictedHours, p.DaysRemaining)
		fmt.Println()
	}

	fmt.Println("Insights")
	fmt.Println(strings.Repeat("=", 32))
	for _, insight := range analyzer.Insights() {
		fmt.Printf("  • %s\n", insight)
	}

	return nil
}
