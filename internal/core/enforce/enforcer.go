package enforce

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const blockerTag = "# PRODUCTIVITY_BLOCKER"

// monitorInterval is the coarse polling cadence of the enforcement loop
const monitorInterval = 5 * time.Second

// DefaultBlockedSites are the hosts blocked during enforcement
var DefaultBlockedSites = []string{
	"facebook.com", "www.facebook.com", "m.facebook.com",
	"twitter.com", "www.twitter.com", "x.com", "www.x.com",
	"instagram.com", "www.instagram.com",
	"tiktok.com", "www.tiktok.com",
	"discord.com", "www.discord.com",
	"reddit.com", "www.reddit.com", "old.reddit.com", "new.reddit.com",
	"9gag.com", "www.9gag.com",
	"imgur.com", "www.imgur.com",
	"youtube.com", "www.youtube.com", "m.youtube.com",
	"twitch.tv", "www.twitch.tv",
	"store.steampowered.com",
	"news.ycombinator.com",
}

// ProcessScanner terminates blocked applications. Implementations are
// OS-specific; a nil scanner disables process sweeps.
type ProcessScanner interface {
	Sweep() error
}

// ErrAlreadyActive is returned when Start is called during a live window
var ErrAlreadyActive = errors.New("enforcement already active")

// Enforcer blocks distracting sites for a bounded window by rewriting the
// hosts file, with a persisted state file so restarts see the live window
type Enforcer struct {
	dataDir      string
	hostsPath    string
	blockedSites []string
	scanner      ProcessScanner
}

// New creates an enforcer persisting state under dataDir
func New(dataDir string) *Enforcer {
	return &Enforcer{
		dataDir:      dataDir,
		hostsPath:    defaultHostsPath(),
		blockedSites: DefaultBlockedSites,
	}
}

// SetScanner installs a process scanner for the monitor loop
func (e *Enforcer) SetScanner(s ProcessScanner) {
	e.scanner = s
}

func defaultHostsPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\System32\drivers\etc\hosts`
	}
	return "/etc/hosts"
}

// Start begins an enforcement window. Rejects when a window is already live;
// callers wanting a longer window must Stop first.
func (e *Enforcer) Start(durationHours float64) error {
	if st := e.LoadState(); st != nil {
		return ErrAlreadyActive
	}

	if err := os.MkdirAll(e.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	if err := e.backupHosts(); err != nil {
		return err
	}
	if err := e.rewriteHostsFile(true); err != nil {
		return err
	}

	endTime := time.Now().Add(time.Duration(durationHours * float64(time.Hour)))
	if err := e.saveState(endTime); err != nil {
		return err
	}

	log.Printf("Enforcement active until %s", endTime.Format("15:04"))
	return nil
}

// Stop ends the enforcement window and removes the hosts entries
func (e *Enforcer) Stop() error {
	if err := e.rewriteHostsFile(false); err != nil {
		return err
	}
	e.clearState()
	log.Printf("Enforcement deactivated")
	return nil
}

// Monitor polls until the window's deadline passes or ctx is cancelled,
// sweeping blocked processes each tick. Safe to cancel and restart.
func (e *Enforcer) Monitor(ctx context.Context) {
	log.Printf("Enforcement monitor starting (interval %s)", monitorInterval)

	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Enforcement monitor cancelled")
			return
		case <-ticker.C:
			st := e.LoadState()
			if st == nil {
				log.Printf("Enforcement window ended")
				if err := e.Stop(); err != nil {
					log.Printf("Error stopping enforcement: %v", err)
				}
				return
			}
			if e.scanner != nil {
				if err := e.scanner.Sweep(); err != nil {
					log.Printf("Process sweep error: %v", err)
				}
			}
		}
	}
}

func (e *Enforcer) backupHosts() error {
	content, err := os.ReadFile(e.hostsPath)
	if err != nil {
		return fmt.Errorf("failed to read hosts file: %w", err)
	}
	backup := filepath.Join(e.dataDir, "hosts_backup.txt")
	if err := os.WriteFile(backup, content, 0644); err != nil {
		return fmt.Errorf("failed to back up hosts file: %w", err)
	}
	return nil
}

func (e *Enforcer) rewriteHostsFile(block bool) error {
	content, err := os.ReadFile(e.hostsPath)
	if err != nil {
		return fmt.Errorf("failed to read hosts file: %w", err)
	}

	rewritten := rewriteHosts(string(content), e.blockedSites, block)

	if err := os.WriteFile(e.hostsPath, []byte(rewritten), 0644); err != nil {
		return fmt.Errorf("failed to write hosts file (elevated privileges required?): %w", err)
	}
	return nil
}

// rewriteHosts strips any previous blocker entries and, when blocking,
// appends tagged loopback entries for each site
func rewriteHosts(content string, sites []string, block bool) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), blockerTag) {
			continue
		}
		lines = append(lines, line)
	}

	out := strings.Join(lines, "\n")
	if !block {
		return out
	}

	var b strings.Builder
	b.WriteString(out)
	if !strings.HasSuffix(out, "\n") {
		b.WriteString("\n")
	}
	for _, site := range sites {
		fmt.Fprintf(&b, "127.0.0.1 %s %s\n", site, blockerTag)
	}
	return b.String()
}
