package cli

import (
	"testing"
	"time"
)

func TestParseDateArgLayouts(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"2025-06-02", "2025-06-02"},
		{"2025/06/02", "2025-06-02"},
		{"06/02/2025", "2025-06-02"},
	}

	for _, tt := range tests {
		got := parseDateArg(tt.arg)
		if got == nil {
			t.Errorf("parseDateArg(%q) = nil", tt.arg)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("parseDateArg(%q) = %s, want %s", tt.arg, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestParseDateArgRejectsGarbage(t *testing.T) {
	if got := parseDateArg("not-a-date-at-all"); got != nil {
		t.Errorf("parseDateArg(garbage) = %v, want nil", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC), "2025-06-02"},
		{"monday", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "2025-06-02"},
		{"sunday", time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC), "2025-06-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfWeek(tt.in).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("startOfWeek(%s) = %s, want %s", tt.in.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
