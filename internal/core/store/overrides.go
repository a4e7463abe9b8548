package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"prodtrack/internal/core/models"
)

const overridesFile = "activity_overrides.json"

// ActivityRow is a flattened session row for display or manual editing
type ActivityRow struct {
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// RecentActivities flattens the most recent sessions of a record into simple
// rows for the activities view
func RecentActivities(rec *models.DailyRecord, limit int) []ActivityRow {
	sessions := rec.Sessions
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}

	rows := make([]ActivityRow, 0, len(sessions))
	for _, s := range sessions {
		label := s.Application
		if label == "" {
			label = s.WindowTitle
		}
		if label == "" {
			label = "Session"
		}
		rows = append(rows, ActivityRow{
			StartTime:       s.StartTime.Format("15:04:05"),
			EndTime:         s.EndTime.Format("15:04:05"),
			Label:           label,
			Category:        string(s.Category),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return rows
}

// SaveOverrides persists manually edited activity rows. The override ledger
// is a separate user-editable file; it is never merged back into daily
// summaries automatically.
func (s *FileStore) SaveOverrides(rows []ActivityRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode overrides: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, overridesFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write overrides: %w", err)
	}
	return nil
}

// LoadOverrides reads the manual override ledger, or nil if none exists
func (s *FileStore) LoadOverrides() []ActivityRow {
	data, err := os.ReadFile(filepath.Join(s.dir, overridesFile))
	if err != nil {
		return nil
	}

	var rows []ActivityRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil
	}
	return rows
}
