package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the static configuration loaded once at startup
type Config struct {
	DataDir       string
	IdleThreshold time.Duration

	BuildingApps          []string
	StudyingApps          []string
	ApplyingSites         []string
	PseudoProductiveSites []string
}

type tomlConfig struct {
	DataDir               string   `toml:"data_dir"`
	IdleThresholdMinutes  int      `toml:"idle_threshold_minutes"`
	BuildingApps          []string `toml:"building_apps"`
	StudyingApps          []string `toml:"studying_apps"`
	ApplyingSites         []string `toml:"applying_sites"`
	PseudoProductiveSites []string `toml:"pseudo_productive_sites"`
}

// Default returns the built-in configuration used when no config file exists
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		DataDir:       filepath.Join(home, ".local", "share", "prodtrack"),
		IdleThreshold: 5 * time.Minute,
		BuildingApps: []string{
			"code", "idea", "pycharm", "goland", "vim", "nvim", "emacs",
			"cmd", "powershell", "terminal", "iterm", "alacritty", "kitty",
		},
		StudyingApps: []string{
			"canvas", "pdf", "notion", "onenote", "acrobat", "obsidian", "anki",
		},
		ApplyingSites: []string{
			"linkedin.com", "indeed.com", "glassdoor.com",
		},
		PseudoProductiveSites: []string{
			"youtube.com", "reddit.com", "twitter.com",
		},
	}
}

// Load reads config from ~/.config/prodtrack/config.toml, falling back to
// defaults for anything missing. A missing or unreadable file is not an
// error; the defaults are the contract.
func Load() (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	tomlPath := filepath.Join(home, ".config", "prodtrack", "config.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		return cfg, nil
	}

	var tc tomlConfig
	if _, err := toml.DecodeFile(tomlPath, &tc); err != nil {
		return cfg, nil
	}
	cfg.apply(&tc)

	return cfg, nil
}

// LoadFile reads config from an explicit path, for tests and the --config flag
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return cfg, err
	}
	cfg.apply(&tc)

	return cfg, nil
}

func (c *Config) apply(tc *tomlConfig) {
	if tc.DataDir != "" {
		c.DataDir = tc.DataDir
	}
	if tc.IdleThresholdMinutes > 0 {
		c.IdleThreshold = time.Duration(tc.IdleThresholdMinutes) * time.Minute
	}
	if len(tc.BuildingApps) > 0 {
		c.BuildingApps = tc.BuildingApps
	}
	if len(tc.StudyingApps) > 0 {
		c.StudyingApps = tc.StudyingApps
	}
	if len(tc.ApplyingSites) > 0 {
		c.ApplyingSites = tc.ApplyingSites
	}
	if len(tc.PseudoProductiveSites) > 0 {
		c.PseudoProductiveSites = tc.PseudoProductiveSites
	}
}
