// Package storage provides SQLite-based persistence for table high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Store manages the SQLite database connection for high-score persistence.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game, kept for the history view.
type GameRecord struct {
	ID        int64
	TableID   string
	Player    int
	Score     bcd.Score
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist. Scores are stored
// as 12-digit decimal strings so the BCD range survives round-trips exactly.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			table_id TEXT NOT NULL,
			rank INTEGER NOT NULL,
			name TEXT NOT NULL,
			score TEXT NOT NULL,
			PRIMARY KEY (table_id, rank)
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			table_id TEXT NOT NULL,
			player INTEGER NOT NULL,
			score TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_table_id ON games(table_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScores loads the four-entry high-score table for a table slug. Missing
// rows stay at the zero value, so a fresh database yields an empty table.
func (s *Store) HighScores(tableID string) ([pin.HighScoreCount]pin.HighScore, error) {
	var out [pin.HighScoreCount]pin.HighScore

	rows, err := s.db.Query(
		`SELECT rank, name, score FROM high_scores WHERE table_id = ? ORDER BY rank`,
		tableID,
	)
	if err != nil {
		return out, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rank int
		var name, score string
		if err := rows.Scan(&rank, &name, &score); err != nil {
			return out, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if rank < 0 || rank >= pin.HighScoreCount {
			continue
		}
		copy(out[rank].Name[:], name)
		out[rank].Score = bcd.Parse(score)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveHighScores replaces the stored high-score table in one transaction.
func (s *Store) SaveHighScores(tableID string, scores [pin.HighScoreCount]pin.HighScore) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM high_scores WHERE table_id = ?`, tableID); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	for rank, hs := range scores {
		_, err := tx.Exec(
			`INSERT INTO high_scores (table_id, rank, name, score) VALUES (?, ?, ?, ?)`,
			tableID, rank, hs.NameString(), hs.Score.String(),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}
	return tx.Commit()
}

// SaveGame records a finished game's final score for one player.
func (s *Store) SaveGame(tableID string, player int, score bcd.Score) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (table_id, player, score) VALUES (?, ?, ?)`,
		tableID, player, score.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentGames retrieves the most recent finished games for a table.
func (s *Store) RecentGames(tableID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, table_id, player, score, created_at
		 FROM games
		 WHERE table_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		tableID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var score string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.TableID, &r.Player, &score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Score = bcd.Parse(score)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// ClearHighScores deletes the stored high-score table for a table.
func (s *Store) ClearHighScores(tableID string) error {
	if _, err := s.db.Exec(`DELETE FROM high_scores WHERE table_id = ?`, tableID); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	return nil
}
