// Package storage persists highscores and ranked replays. The default
// backend is a local SQLite file through the pure-Go modernc.org/sqlite
// driver; a postgres:// DSN selects PostgreSQL through lib/pq so several
// SSH servers can share one scoreboard.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Dialect is the SQL flavor of the open database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Store manages the database connection.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to dsn. A postgres:// or postgresql:// URL opens PostgreSQL;
// anything else is a SQLite file path, with ~ expanded and parent
// directories created. Migrations run on open.
func Open(dsn string) (*Store, error) {
	dialect, source, err := resolve(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), source)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func resolve(dsn string) (Dialect, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres, dsn, nil
	}

	path := dsn
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return DialectSQLite, path, nil
}

// Dialect reports which backend is open.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	stamp := "DATETIME DEFAULT CURRENT_TIMESTAMP"
	if s.dialect == DialectPostgres {
		id = "BIGSERIAL PRIMARY KEY"
		stamp = "TIMESTAMP WITH TIME ZONE DEFAULT NOW()"
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id ` + id + `,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			created_at ` + stamp + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC)`,
		`CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			data TEXT NOT NULL,
			created_at ` + stamp + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *Store) exec(query string, args ...any) (sql.Result, error) {
	return s.db.Exec(s.rebind(query), args...)
}

func (s *Store) query(query string, args ...any) (*sql.Rows, error) {
	return s.db.Query(s.rebind(query), args...)
}

func (s *Store) queryRow(query string, args ...any) *sql.Row {
	return s.db.QueryRow(s.rebind(query), args...)
}

// insert runs an INSERT and returns the new row's id. lib/pq has no
// LastInsertId, so PostgreSQL uses RETURNING.
func (s *Store) insert(query string, args ...any) (int64, error) {
	if s.dialect == DialectPostgres {
		var id int64
		err := s.queryRow(query+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := s.exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// parseTime handles both time.Time and the string form SQLite returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
