package enforce

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stateFile = "enforcement_state.json"

// State is the persisted enforcement window, readable across process
// restarts so an already-running jail is detected on startup
type State struct {
	Active  bool      `json:"active"`
	Started time.Time `json:"started"`
	EndTime time.Time `json:"end_time"`
}

func (e *Enforcer) statePath() string {
	return filepath.Join(e.dataDir, stateFile)
}

func (e *Enforcer) saveState(endTime time.Time) error {
	state := State{
		Active:  true,
		Started: time.Now(),
		EndTime: endTime,
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode enforcement state: %w", err)
	}
	if err := os.WriteFile(e.statePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write enforcement state: %w", err)
	}
	return nil
}

// LoadState returns the persisted enforcement window. An expired or missing
// window reads as inactive.
func (e *Enforcer) LoadState() *State {
	data, err := os.ReadFile(e.statePath())
	if err != nil {
		return nil
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	if !state.Active || time.Now().After(state.EndTime) {
		return nil
	}
	return &state
}

// ActiveUntil returns the end of the live enforcement window, if any
func (e *Enforcer) ActiveUntil() (time.Time, bool) {
	st := e.LoadState()
	if st == nil {
		return time.Time{}, false
	}
	return st.EndTime, true
}

func (e *Enforcer) clearState() {
	_ = os.Remove(e.statePath())
}
