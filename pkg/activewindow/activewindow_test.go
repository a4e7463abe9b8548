package activewindow

import (
	"errors"
	"testing"
	"time"
)

func TestActiveWindowNormalization(t *testing.T) {
	tests := []struct {
		name      string
		app       string
		title     string
		err       error
		wantApp   string
		wantTitle string
	}{
		{"normal", "Code", "main.go - project", nil, "Code", "main.go - project"},
		{"probe error", "", "", errors.New("no display"), Unknown, Unknown},
		{"empty app", "", "some title", nil, Unknown, Unknown},
		{"empty title", "Terminal", "", nil, "Terminal", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Prober{probe: func() (string, string, error) {
				return tt.app, tt.title, tt.err
			}}
			app, title := p.ActiveWindow()
			if app != tt.wantApp || title != tt.wantTitle {
				t.Errorf("ActiveWindow() = (%q, %q), want (%q, %q)", app, title, tt.wantApp, tt.wantTitle)
			}
		})
	}
}

func TestUserActivityFromIdleCounter(t *testing.T) {
	tests := []struct {
		name string
		idle time.Duration
		want bool
	}{
		{"fresh input", 100 * time.Millisecond, true},
		{"stale input", 10 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UserActivity{idle: func() (time.Duration, error) { return tt.idle, nil }}
			if got := u.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserActivityFallsBackToWindowProbe(t *testing.T) {
	noIdle := func() (time.Duration, error) { return 0, errors.New("unavailable") }

	ok := &UserActivity{
		prober: &Prober{probe: func() (string, string, error) { return "Code", "t", nil }},
		idle:   noIdle,
	}
	if !ok.Active() {
		t.Error("Active() = false with a visible window")
	}

	down := &UserActivity{
		prober: &Prober{probe: func() (string, string, error) { return "", "", errors.New("nope") }},
		idle:   noIdle,
	}
	if down.Active() {
		t.Error("Active() = true with no observable window")
	}
}
