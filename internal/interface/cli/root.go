package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"prodtrack/internal/core/config"
	"prodtrack/internal/core/store"
)

var (
	configPath  string
	dataDir     string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prodtrack",
	Short: "Desktop productivity tracker",
	Long: `prodtrack - track where your screen time actually goes

Samples the active window, buckets time into productivity categories,
and rolls the results up into daily, weekly, monthly, and yearly views.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/prodtrack/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: from config)")
}

// loadConfig resolves the effective configuration from flags and the config
// file. Flag values win over file values.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// openStore loads config and opens the daily-record store
func openStore() (*config.Config, *store.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data dir: %w", err)
	}
	return cfg, st, nil
}
