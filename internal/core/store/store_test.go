package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"prodtrack/internal/core/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestLoadMissingDay(t *testing.T) {
	s := newTestStore(t)

	rec := s.Load(time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local))
	if rec.Date != "2025-06-01" {
		t.Errorf("Date = %q, want 2025-06-01", rec.Date)
	}
	if len(rec.Sessions) != 0 {
		t.Errorf("expected empty session list, got %d", len(rec.Sessions))
	}
	if rec.Summary.TotalProductive != 0 {
		t.Errorf("TotalProductive = %.1f, want 0", rec.Summary.TotalProductive)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	rec := models.NewDailyRecord(day)
	rec.CountSwitch()
	rec.AppendSession(models.Session{
		StartTime:       day.Add(9 * time.Hour),
		EndTime:         day.Add(9*time.Hour + 45*time.Minute),
		Application:     "code",
		WindowTitle:     "tracker.go",
		Category:        models.Building,
		DurationMinutes: 45,
	})
	rec.CountSwitch()
	rec.AppendSession(models.Session{
		StartTime:          day.Add(10 * time.Hour),
		EndTime:            day.Add(10*time.Hour + 12*time.Minute),
		Application:        "chrome",
		WindowTitle:        "r/golang on reddit",
		Category:           models.Knowledge,
		DurationMinutes:    12,
		IsPseudoProductive: true,
	})

	if err := s.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := s.Load(day)
	if got.Summary != rec.Summary {
		t.Errorf("summary mismatch after round trip:\n got %+v\nwant %+v", got.Summary, rec.Summary)
	}
	if !reflect.DeepEqual(got.Sessions, rec.Sessions) {
		t.Errorf("sessions mismatch after round trip:\n got %+v\nwant %+v", got.Sessions, rec.Sessions)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)

	path := filepath.Join(s.Dir(), "2025-06-03.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := s.Load(day)
	if rec.Date != "2025-06-03" {
		t.Errorf("Date = %q, want 2025-06-03", rec.Date)
	}
	if len(rec.Sessions) != 0 || rec.Summary.TotalProductive != 0 {
		t.Error("corrupt file should degrade to an empty record")
	}
}

func TestListDates(t *testing.T) {
	s := newTestStore(t)

	days := []time.Time{
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local),
		time.Date(2025, 5, 30, 0, 0, 0, 0, time.Local),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
	}
	for _, d := range days {
		if err := s.Save(models.NewDailyRecord(d)); err != nil {
			t.Fatal(err)
		}
	}

	// Non-record files are ignored
	if err := os.WriteFile(filepath.Join(s.Dir(), "activity_overrides.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got := s.ListDates()
	want := []string{"2025-05-30", "2025-06-01", "2025-06-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDates() = %v, want %v", got, want)
	}
}

func TestLoadRange(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	rec := models.NewDailyRecord(start.AddDate(0, 0, 2))
	rec.CountSwitch()
	rec.AppendSession(models.Session{
		Application: "code", Category: models.Building, DurationMinutes: 60,
	})
	if err := s.Save(rec); err != nil {
		t.Fatal(err)
	}

	records := s.LoadRange(start, 7)
	if len(records) != 7 {
		t.Fatalf("LoadRange() returned %d records, want 7", len(records))
	}
	if records[2].Summary.Building != 60 {
		t.Errorf("day 3 building = %.1f, want 60", records[2].Summary.Building)
	}
	for i, r := range records {
		if i == 2 {
			continue
		}
		if r.Summary.TotalProductive != 0 {
			t.Errorf("day %d should be empty", i+1)
		}
	}
}

func TestLoadMonth(t *testing.T) {
	s := newTestStore(t)

	records := s.LoadMonth(2025, time.February)
	if len(records) != 28 {
		t.Errorf("LoadMonth(Feb 2025) returned %d days, want 28", len(records))
	}

	records = s.LoadMonth(2024, time.February)
	if len(records) != 29 {
		t.Errorf("LoadMonth(Feb 2024) returned %d days, want 29", len(records))
	}
}

func TestOverridesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	rows := []ActivityRow{
		{StartTime: "09:00:00", EndTime: "09:30:00", Label: "standup prep", Category: "Building", DurationMinutes: 30},
	}
	if err := s.SaveOverrides(rows); err != nil {
		t.Fatalf("SaveOverrides() error = %v", err)
	}

	got := s.LoadOverrides()
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("LoadOverrides() = %+v, want %+v", got, rows)
	}
}

func TestRecentActivities(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	rec := models.NewDailyRecord(day)
	for i := 0; i < 5; i++ {
		rec.CountSwitch()
		rec.AppendSession(models.Session{
			StartTime:       day.Add(time.Duration(i) * time.Hour),
			EndTime:         day.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			Application:     "code",
			Category:        models.Building,
			DurationMinutes: 30,
		})
	}

	rows := RecentActivities(rec, 3)
	if len(rows) != 3 {
		t.Fatalf("RecentActivities() returned %d rows, want 3", len(rows))
	}
	if rows[0].StartTime != "02:00:00" {
		t.Errorf("first row start = %q, want 02:00:00 (oldest kept)", rows[0].StartTime)
	}
	if rows[0].Label != "code" || rows[0].Category != "Building" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}
