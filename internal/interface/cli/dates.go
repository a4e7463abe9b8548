package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/models"
	"prodtrack/internal/core/stats"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List all recorded days",
	RunE:  runDates,
}

func init() {
	rootCmd.AddCommand(datesCmd)
}

func runDates(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	dates := st.ListDates()
	if len(dates) == 0 {
		fmt.Println("No recorded days yet. Run 'prodtrack track' to start.")
		return nil
	}

	for _, date := range dates {
		day, err := time.ParseInLocation(models.DateFormat, date, time.Local)
		if err != nil {
			continue
		}
		rec := st.Load(day)
		fmt.Printf("  %s  %8s  (%s)\n", date,
			stats.FormatMinutes(rec.Summary.TotalProductive), humanize.Time(day))
	}
	fmt.Printf("\n%d days recorded\n", len(dates))
	return nil
}
