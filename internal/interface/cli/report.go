package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cbroglie/mustache"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/stats"
	"prodtrack/internal/core/trends"
)

var reportCopy bool

// reportTemplate is the weekly report body. Rendered values are already
// formatted; the template only does layout.
const reportTemplate = `Weekly Productivity Report — week of {{week_start}}

Totals
  Building:   {{building}}h ({{building_change}}% vs last week)
  Studying:   {{studying}}h ({{studying_change}}% vs last week)
  Applying:   {{applying}}h ({{applying_change}}% vs last week)
  Knowledge:  {{knowledge}}h ({{knowledge_change}}% vs last week)

  Total:      {{total}}h ({{total_change}}% vs last week)
  Top category: {{top_category}}
  Consistency:  {{consistency}}% of days over 2h
{{#best_day}}
  Best day:     {{best_day}}
{{/best_day}}

Insights
{{#insights}}
  • {{.}}
{{/insights}}
`

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a weekly report",
	Long: `Render the current week's report with week-over-week comparisons.

Use --copy to also place the plain-text report on the clipboard.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVarP(&reportCopy, "copy", "c", false, "Copy report to clipboard")
}

func runReport(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	calc := stats.New(st)
	analyzer := trends.New(calc)

	week := calc.Weekly(startOfWeek(time.Now()))
	comparison := analyzer.WeeklyComparison()

	data := map[string]interface{}{
		"week_start":   week.WeekStart,
		"top_category": string(week.TopCategory),
		"consistency":  fmt.Sprintf("%.0f", week.Consistency*100),
		"insights":     analyzer.Insights(),
	}
	if week.BestDay != nil {
		data["best_day"] = fmt.Sprintf("%s (%s)", week.BestDay.Date, stats.FormatMinutes(week.BestDay.TotalMinutes))
	}

	buckets := map[string]string{
		"Building":  "building",
		"Studying":  "studying",
		"Applying":  "applying",
		"Knowledge": "knowledge",
		"Total":     "total",
	}
	for name, key := range buckets {
		c := comparison[name]
		data[key] = fmt.Sprintf("%.1f", c.CurrentHours)
		data[key+"_change"] = fmt.Sprintf("%+.1f", c.ChangePct)
	}

	report, err := mustache.Render(reportTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	fmt.Println(titleStyle.Render("prodtrack"))
	fmt.Println()
	fmt.Print(report)

	if reportCopy {
		if err := clipboard.WriteAll(report); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Println()
		fmt.Println("✓ Report copied to clipboard")
	}

	return nil
}
