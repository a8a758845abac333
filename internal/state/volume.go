package state

import "database/sql"

// GetVolume returns the saved volume level, or the given default when no
// state has been saved yet.
func (m *Manager) GetVolume(fallback float64) (float64, error) {
	var volume float64

	row := m.db.QueryRow(`SELECT volume FROM player_state WHERE id = 1`)
	err := row.Scan(&volume)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	if volume < 0 || volume > 1 {
		return fallback, nil
	}
	return volume, nil
}

// SaveVolume persists the volume level.
func (m *Manager) SaveVolume(volume float64) error {
	_, err := m.db.Exec(`
		INSERT INTO player_state (id, volume, current_index)
		VALUES (1, ?, -1)
		ON CONFLICT(id) DO UPDATE SET volume = excluded.volume
	`, volume)
	return err
}
