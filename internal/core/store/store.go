package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"prodtrack/internal/core/models"
)

// FileStore persists one JSON document per calendar day. Filenames are
// YYYY-MM-DD.json so a sorted directory listing is already in date order.
type FileStore struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory path
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(date string) string {
	return filepath.Join(s.dir, date+".json")
}

// Load returns the record for a date. A missing, unreadable, or corrupt file
// degrades to a fresh empty record; the caller never sees an error for those.
func (s *FileStore) Load(date time.Time) *models.DailyRecord {
	key := date.Format(models.DateFormat)

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return models.NewDailyRecord(date)
	}

	var rec models.DailyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.NewDailyRecord(date)
	}
	if rec.Date == "" {
		rec.Date = key
	}
	if rec.Sessions == nil {
		rec.Sessions = []models.Session{}
	}

	return &rec
}

// Save writes the record wholesale to its date-keyed file
func (s *FileStore) Save(rec *models.DailyRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := os.WriteFile(s.path(rec.Date), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.Date, err)
	}
	return nil
}

// ListDates returns all dates with a persisted record, ascending
func (s *FileStore) ListDates() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		// YYYY-MM-DD.json
		if len(name) != 15 || !strings.HasSuffix(name, ".json") {
			continue
		}
		date := strings.TrimSuffix(name, ".json")
		if _, err := time.Parse(models.DateFormat, date); err != nil {
			continue
		}
		dates = append(dates, date)
	}

	sort.Strings(dates)
	return dates
}

// LoadRange returns records for each day in [start, start+days), in order.
// Days with no file come back as empty records.
func (s *FileStore) LoadRange(start time.Time, days int) []*models.DailyRecord {
	records := make([]*models.DailyRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, s.Load(start.AddDate(0, 0, i)))
	}
	return records
}

// LoadMonth returns records for every calendar day of the given month
func (s *FileStore) LoadMonth(year int, month time.Month) []*models.DailyRecord {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, -1).Day()
	return s.LoadRange(first, days)
}
