package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/category"
	"prodtrack/internal/core/enforce"
	"prodtrack/internal/core/focus"
	"prodtrack/internal/core/stats"
	"prodtrack/internal/core/tracker"
	"prodtrack/internal/interface/tui"
	"prodtrack/pkg/activewindow"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the terminal dashboard.

Runs the tracking loop in the background and shows live tabs for the
focus session, today's activities, and statistics.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	prober := activewindow.New()
	activity := activewindow.NewUserActivity(prober)
	engine := category.NewEngine(cfg)
	tr := tracker.New(engine, st, prober, activity, cfg.IdleThreshold)

	manager := focus.New(enforce.New(cfg.DataDir))
	calc := stats.New(st)

	// The tracker runs for as long as the dashboard is open; cancelling the
	// context flushes the open session, and we wait for that flush before
	// the process exits.
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tr.Run(ctx, tracker.DefaultSampleInterval)
		close(done)
	}()

	p := tea.NewProgram(
		tui.New(tr, manager, calc),
		tea.WithAltScreen(),
	)

	_, runErr := p.Run()

	cancel()
	<-done

	// End any focus session before the enforcer loses its process
	manager.End()

	if runErr != nil {
		return fmt.Errorf("failed to run dashboard: %w", runErr)
	}
	return nil
}
