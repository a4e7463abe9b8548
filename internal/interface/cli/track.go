package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"prodtrack/internal/core/category"
	"prodtrack/internal/core/tracker"
	"prodtrack/pkg/activewindow"
)

var trackInterval time.Duration

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run the activity tracking loop",
	Long: `Run the foreground tracking loop.

Samples the active window once per second, closes a session on every app
switch, and appends finished sessions to today's record. Stop with Ctrl+C;
the open session is flushed on shutdown.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().DurationVar(&trackInterval, "interval", tracker.DefaultSampleInterval, "Sampling interval")
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	prober := activewindow.New()
	activity := activewindow.NewUserActivity(prober)
	engine := category.NewEngine(cfg)
	tr := tracker.New(engine, st, prober, activity, cfg.IdleThreshold)

	fmt.Println("Tracking started")
	fmt.Printf("  Data: %s\n", st.Dir())
	fmt.Printf("  Interval: %s\n", trackInterval)
	fmt.Printf("  Idle threshold: %s\n", cfg.IdleThreshold)
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tr.Run(ctx, trackInterval)

	fmt.Println("Tracking stopped")
	return nil
}
