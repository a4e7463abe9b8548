package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"prodtrack/internal/core/enforce"
)

var jailMonitor bool

var jailCmd = &cobra.Command{
	Use:   "jail",
	Short: "Manage distraction blocking",
	Long: `Control the hosts-file distraction blocker directly.

Blocking rewrites the system hosts file, so start and stop typically
require elevated privileges. The original hosts content is backed up
before the first modification.`,
}

var jailStartCmd = &cobra.Command{
	Use:   "start <hours>",
	Short: "Block distracting sites for a number of hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runJailStart,
}

var jailStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop blocking and restore the hosts file",
	RunE:  runJailStop,
}

var jailStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show blocking status",
	RunE:  runJailStatus,
}

func init() {
	rootCmd.AddCommand(jailCmd)
	jailCmd.AddCommand(jailStartCmd)
	jailCmd.AddCommand(jailStopCmd)
	jailCmd.AddCommand(jailStatusCmd)

	jailStartCmd.Flags().BoolVar(&jailMonitor, "monitor", false, "Stay in the foreground and unblock when the window ends")
}

func runJailStart(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil || hours <= 0 {
		return fmt.Errorf("invalid duration %q: want a positive number of hours", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e := enforce.New(cfg.DataDir)
	if err := e.Start(hours); err != nil {
		if err == enforce.ErrAlreadyActive {
			return fmt.Errorf("blocking already active; run 'prodtrack jail stop' first")
		}
		return err
	}

	fmt.Printf("✓ Blocking %d sites for %.1f hours\n", len(enforce.DefaultBlockedSites), hours)

	if jailMonitor {
		fmt.Println("Monitoring until the window ends (Ctrl+C to detach, blocking stays active)")
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		e.Monitor(ctx)
	} else {
		fmt.Println("Run 'prodtrack jail stop' to unblock early")
	}
	return nil
}

func runJailStop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := enforce.New(cfg.DataDir).Stop(); err != nil {
		return err
	}
	fmt.Println("✓ Blocking stopped, hosts file restored")
	return nil
}

func runJailStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := enforce.New(cfg.DataDir).LoadState()
	if st == nil {
		fmt.Println("Blocking: NOT ACTIVE")
		return nil
	}

	fmt.Println("Blocking: ACTIVE")
	fmt.Printf("  Started: %s (%s)\n", st.Started.Format("15:04"), humanize.Time(st.Started))
	fmt.Printf("  Ends:    %s (%s)\n", st.EndTime.Format("15:04"), humanize.Time(st.EndTime))
	fmt.Printf("  Sites:   %d blocked\n", len(enforce.DefaultBlockedSites))
	return nil
}
