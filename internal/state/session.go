package state

import (
	"database/sql"
	"time"
)

// Session is the saved playlist: track paths in order plus the current index.
// Metadata is re-read at restore time; only the paths are persisted.
type Session struct {
	Paths        []string
	CurrentIndex int
}

// GetSession returns the saved session, or nil if none was saved.
func (m *Manager) GetSession() (*Session, error) {
	rows, err := m.db.Query(`SELECT path FROM session_tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	idx := -1
	row := m.db.QueryRow(`SELECT current_index FROM player_state WHERE id = 1`)
	if err := row.Scan(&idx); err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if idx < -1 || idx >= len(paths) {
		idx = -1
	}

	return &Session{Paths: paths, CurrentIndex: idx}, nil
}

// SaveSession schedules a debounced save of the session. Rapid successive
// mutations collapse into one write; Close flushes whatever is pending.
func (m *Manager) SaveSession(s Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveSession(m.db, *pending)
		}
	})
}

func saveSession(db *sql.DB, s Session) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session_tracks`); err != nil {
		return err
	}
	for i, p := range s.Paths {
		if _, err := tx.Exec(`INSERT INTO session_tracks (position, path) VALUES (?, ?)`, i, p); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`
		INSERT INTO player_state (id, volume, current_index)
		VALUES (1, 1.0, ?)
		ON CONFLICT(id) DO UPDATE SET current_index = excluded.current_index
	`, s.CurrentIndex); err != nil {
		return err
	}

	return tx.Commit()
}
