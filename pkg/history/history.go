// Package history persists dice rolls to a SQLite database so past rolls can
// be listed and summarized across sessions.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/keeper-tools/keeper/pkg/models"
)

// Store records and queries dice rolls.
type Store interface {
	// Record stores one roll.
	Record(ctx context.Context, rec models.RollRecord) error
	// Recent returns the newest rolls, most recent first, at most limit.
	Recent(ctx context.Context, limit int) ([]models.RollRecord, error)
	// Summary aggregates history per normalized expression.
	Summary(ctx context.Context) ([]models.RollSummary, error)
	// Clear deletes all history.
	Clear(ctx context.Context) error
	// Close releases resources.
	Close() error
}

// SQLiteStore implements Store with a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS roll_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	expression TEXT NOT NULL,
	total INTEGER NOT NULL,
	rolls TEXT NOT NULL,
	seed INTEGER NOT NULL DEFAULT 0,
	deterministic INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_roll_history_expr_time ON roll_history(expression, created_at);
`

// New creates a SQLiteStore and runs auto-migration.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record stores one roll. The per-die breakdown is stored as a JSON array.
func (s *SQLiteStore) Record(ctx context.Context, rec models.RollRecord) error {
	rolls, err := json.Marshal(rec.Rolls)
	if err != nil {
		return fmt.Errorf("encode rolls: %w", err)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO roll_history (expression, total, rolls, seed, deterministic, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Expression, rec.Total, string(rolls), rec.Seed, rec.Deterministic, createdAt,
	)
	if err != nil {
		return fmt.Errorf("record roll: %w", err)
	}
	return nil
}

// Recent returns the newest rolls, most recent first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]models.RollRecord, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expression, total, rolls, seed, deterministic, created_at
		 FROM roll_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []models.RollRecord
	for rows.Next() {
		var rec models.RollRecord
		var rolls string
		if err := rows.Scan(&rec.ID, &rec.Expression, &rec.Total, &rolls, &rec.Seed, &rec.Deterministic, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		if err := json.Unmarshal([]byte(rolls), &rec.Rolls); err != nil {
			return nil, fmt.Errorf("decode rolls: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Summary aggregates history per expression.
func (s *SQLiteStore) Summary(ctx context.Context) ([]models.RollSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT expression, COUNT(*), MIN(total), MAX(total), AVG(total)
		 FROM roll_history GROUP BY expression ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []models.RollSummary
	for rows.Next() {
		var sum models.RollSummary
		if err := rows.Scan(&sum.Expression, &sum.Count, &sum.Min, &sum.Max, &sum.Avg); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Clear deletes all history.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM roll_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
