package enforce

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	dir := t.TempDir()

	hosts := filepath.Join(dir, "hosts")
	if err := os.WriteFile(hosts, []byte("127.0.0.1 localhost\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := New(filepath.Join(dir, "data"))
	e.hostsPath = hosts
	e.blockedSites = []string{"reddit.com", "youtube.com"}
	return e
}

func TestStartBlocksAndPersistsState(t *testing.T) {
	e := newTestEnforcer(t)

	if err := e.Start(2); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	content, err := os.ReadFile(e.hostsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "127.0.0.1 reddit.com "+blockerTag) {
		t.Errorf("hosts file missing blocked entry:\n%s", content)
	}
	if !strings.Contains(string(content), "127.0.0.1 localhost") {
		t.Error("original hosts content was lost")
	}

	st := e.LoadState()
	if st == nil {
		t.Fatal("LoadState() = nil after Start")
	}
	until := time.Until(st.EndTime)
	if until < 119*time.Minute || until > 121*time.Minute {
		t.Errorf("end time %v from now, want ~2h", until)
	}

	endTime, active := e.ActiveUntil()
	if !active || !endTime.Equal(st.EndTime) {
		t.Errorf("ActiveUntil() = (%v, %v), want (%v, true)", endTime, active, st.EndTime)
	}

	// Backup was taken before modification
	backup, err := os.ReadFile(filepath.Join(e.dataDir, "hosts_backup.txt"))
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != "127.0.0.1 localhost\n" {
		t.Errorf("backup content = %q", backup)
	}
}

func TestStartWhileActiveRejected(t *testing.T) {
	e := newTestEnforcer(t)

	if err := e.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(1); err != ErrAlreadyActive {
		t.Errorf("second Start() error = %v, want ErrAlreadyActive", err)
	}
}

func TestStopRestoresHosts(t *testing.T) {
	e := newTestEnforcer(t)

	if err := e.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	content, err := os.ReadFile(e.hostsPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), blockerTag) {
		t.Errorf("blocker entries survive Stop:\n%s", content)
	}
	if !strings.Contains(string(content), "127.0.0.1 localhost") {
		t.Error("original hosts content was lost")
	}

	if e.LoadState() != nil {
		t.Error("state should be cleared after Stop")
	}

	// A new window can start after Stop
	if err := e.Start(1); err != nil {
		t.Errorf("Start() after Stop error = %v", err)
	}
}

func TestExpiredStateReadsInactive(t *testing.T) {
	e := newTestEnforcer(t)

	if err := os.MkdirAll(e.dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := e.saveState(time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}

	if st := e.LoadState(); st != nil {
		t.Errorf("LoadState() = %+v, want nil for expired window", st)
	}
}

func TestRewriteHostsIdempotent(t *testing.T) {
	content := "127.0.0.1 localhost\n"
	sites := []string{"reddit.com"}

	once := rewriteHosts(content, sites, true)
	twice := rewriteHosts(once, sites, true)

	if once != twice {
		t.Errorf("repeated block rewrites differ:\n%q\n%q", once, twice)
	}
	if strings.Count(twice, "reddit.com") != 1 {
		t.Errorf("duplicate entries after rewrite:\n%s", twice)
	}

	restored := rewriteHosts(twice, sites, false)
	if restored != content {
		t.Errorf("unblock = %q, want original %q", restored, content)
	}
}
