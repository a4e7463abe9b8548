package models

import (
	"errors"
	"time"
)

// MinSessionMinutes is the persistence threshold: sessions at or below this
// duration are treated as focus flicks and never logged in detail. The
// context switch they caused still counts.
const MinSessionMinutes = 0.5

// Session is a contiguous period where one application was frontmost
type Session struct {
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Application        string    `json:"application"`
	WindowTitle        string    `json:"window_title"`
	Category           Category  `json:"category"`
	DurationMinutes    float64   `json:"duration_minutes"`
	IsPseudoProductive bool      `json:"is_pseudo_productive"`
}

// Validate checks if the session has required fields
func (s *Session) Validate() error {
	if s.Application == "" {
		return errors.New("application is required")
	}
	if !s.Category.Valid() {
		return errors.New("unknown category: " + string(s.Category))
	}
	if s.DurationMinutes < 0 {
		return errors.New("duration_minutes must be non-negative")
	}
	return nil
}

// Persistable reports whether the session is long enough to log
func (s *Session) Persistable() bool {
	return s.DurationMinutes > MinSessionMinutes
}
