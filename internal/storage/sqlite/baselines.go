package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

func (s *Store) GetBaselineState(category constants.LogCategory) (models.BaselineState, error) {
	state := models.BaselineState{Category: category}

	err := s.db.QueryRow(`
		SELECT confirmed, prompt_dismissed FROM baseline_states WHERE category = ?
	`, string(category)).Scan(&state.Confirmed, &state.PromptDismissed)

	if err == sql.ErrNoRows {
		// No override recorded yet; zero state is the default.
		return state, nil
	}
	if err != nil {
		return models.BaselineState{}, fmt.Errorf("failed to get baseline state: %w", err)
	}

	return state, nil
}

func (s *Store) SaveBaselineState(state models.BaselineState) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO baseline_states (category, confirmed, prompt_dismissed)
		VALUES (?, ?, ?)
	`, string(state.Category), state.Confirmed, state.PromptDismissed)
	if err != nil {
		return fmt.Errorf("failed to save baseline state: %w", err)
	}

	return nil
}

func (s *Store) GetFlag(key string) (bool, error) {
	var value bool
	err := s.db.QueryRow(`SELECT value FROM flags WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get flag: %w", err)
	}
	return value, nil
}

func (s *Store) SetFlag(key string, value bool) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO flags (key, value) VALUES (?, ?)
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set flag: %w", err)
	}
	return nil
}

func (s *Store) IsSuggestionDismissed(id string) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT count(*) FROM dismissed_suggestions WHERE id = ?
	`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check suggestion dismissal: %w", err)
	}
	return count > 0, nil
}

func (s *Store) DismissSuggestion(id string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO dismissed_suggestions (id, dismissed_at) VALUES (?, ?)
	`, id, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to dismiss suggestion: %w", err)
	}
	return nil
}
