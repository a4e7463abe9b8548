package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/enforce"
	"prodtrack/internal/core/focus"
	"prodtrack/internal/core/stats"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a focus session",
	Long: `Run a timed focus session with a live countdown.

Quick Focus runs 25 minutes. Deep Work runs 90 minutes and blocks
distracting sites for the duration (requires elevated privileges for
the hosts file). Ctrl+C ends the session early.`,
}

var focusQuickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Start a 25-minute Quick Focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocusSession(focus.QuickFocus)
	},
}

var focusDeepCmd = &cobra.Command{
	Use:   "deep",
	Short: "Start a 90-minute Deep Work session with distraction blocking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocusSession(focus.DeepWork)
	},
}

var focusStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show distraction-blocking status",
	RunE:  runFocusStatus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.AddCommand(focusQuickCmd)
	focusCmd.AddCommand(focusDeepCmd)
	focusCmd.AddCommand(focusStatusCmd)
}

func runFocusSession(mode focus.Mode) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager := focus.New(enforce.New(cfg.DataDir))
	manager.Start(mode)

	info := manager.Info()
	fmt.Printf("%s started (%s)\n", mode, focus.FormatClock(mode.Duration()))
	if info != nil && info.JailActive {
		fmt.Println("Distraction blocking active")
	}
	fmt.Println("Press Ctrl+C to end early")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			printFocusSummary(manager.End())
			return nil
		case <-ticker.C:
			if summary := manager.Update(); summary != nil {
				fmt.Println()
				printFocusSummary(summary)
				return nil
			}
			if info := manager.Info(); info != nil {
				remaining := time.Duration(info.RemainingMinutes * float64(time.Minute))
				fmt.Printf("\r  %s  %s %.0f%%  ",
					focus.FormatClock(remaining),
					stats.ProgressBar(info.ElapsedMinutes, info.TargetMinutes, 30),
					info.ProgressPct)
			}
		}
	}
}

func printFocusSummary(summary *focus.Summary) {
	if summary == nil {
		return
	}
	fmt.Printf("%s finished\n", summary.Mode)
	fmt.Printf("  Active:     %.1fm\n", summary.ActiveMinutes)
	fmt.Printf("  Total:      %.1fm\n", summary.TotalMinutes)
	fmt.Printf("  Completion: %d%%\n", summary.CompletionPct)
}

func runFocusStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	endTime, active := enforce.New(cfg.DataDir).ActiveUntil()
	if !active {
		fmt.Println("No distraction blocking active")
		return nil
	}

	fmt.Println("Distraction blocking ACTIVE")
	fmt.Printf("  Ends: %s (%s)\n", endTime.Format("15:04"), humanize.Time(endTime))
	return nil
}
