package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ReplayEntry is a stored replay. Data holds the encoded replay record.
type ReplayEntry struct {
	ID        string
	GameID    string
	Name      string
	Score     int
	Verified  bool
	Data      []byte
	CreatedAt time.Time
}

// SaveReplay stores a replay under its ID.
func (s *Store) SaveReplay(r ReplayEntry) error {
	if r.ID == "" {
		return errors.New("storage: replay without id")
	}
	_, err := s.exec(
		"INSERT INTO replays (id, game_id, name, score, verified, data) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.GameID, CleanName(r.Name), r.Score, r.Verified, string(r.Data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return nil
}

// Replay returns the replay with the given ID, or nil if there is none.
func (s *Store) Replay(id string) (*ReplayEntry, error) {
	var r ReplayEntry
	var data string
	var createdAt any
	err := s.queryRow(
		`SELECT id, game_id, name, score, verified, data, created_at FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Name, &r.Score, &r.Verified, &data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.Data = []byte(data)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// RecentReplays lists the newest replays of a game without their data.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	limit = min(limit, MaxScores)

	rows, err := s.query(
		`SELECT id, game_id, name, score, verified, created_at
		 FROM replays
		 WHERE game_id = ?
		 ORDER BY created_at DESC, score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var r ReplayEntry
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Name, &r.Score, &r.Verified, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
