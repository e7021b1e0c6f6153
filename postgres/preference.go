package postgres

import (
	"context"
	"fmt"
)

// GetPreference returns the stored value for key and whether it was set.
func (s *PGStore) GetPreference(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM graph_preferences WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("nodegraph: get preference: %w", err)
	}
	return value, true, nil
}

// SetPreference upserts a preference.
func (s *PGStore) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO graph_preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("nodegraph: set preference: %w", err)
	}
	return nil
}
