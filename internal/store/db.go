// Package store provides the SQLite-backed explanation cache.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/iburimskiy/chord-angle/internal/explain"
)

// DB wraps a SQLite connection holding cached explanations.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path, creating its
// directory if needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS explanations (
		id TEXT PRIMARY KEY,
		chord_spread INTEGER NOT NULL,
		angle_tenths INTEGER NOT NULL,
		radius_tenths INTEGER NOT NULL,
		text TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_explanations_key
		ON explanations(chord_spread, angle_tenths, radius_tenths);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Entry is one cached explanation.
type Entry struct {
	ID           string    `db:"id"`
	ChordSpread  int       `db:"chord_spread"`
	AngleTenths  int       `db:"angle_tenths"`
	RadiusTenths int       `db:"radius_tenths"`
	Text         string    `db:"text"`
	CreatedAt    time.Time `db:"created_at"`
}

// Lookup returns the cached explanation for key, if any.
func (db *DB) Lookup(ctx context.Context, key explain.Key) (string, bool, error) {
	var text string
	err := db.conn.GetContext(ctx, &text,
		"SELECT text FROM explanations WHERE chord_spread = ? AND angle_tenths = ? AND radius_tenths = ?",
		key.ChordSpread, key.AngleTenths, key.RadiusTenths,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup explanation: %w", err)
	}
	return text, true, nil
}

// Save stores text for key, replacing any earlier entry.
func (db *DB) Save(ctx context.Context, key explain.Key, text string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO explanations (id, chord_spread, angle_tenths, radius_tenths, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(chord_spread, angle_tenths, radius_tenths)
		DO UPDATE SET text = excluded.text, created_at = excluded.created_at`,
		uuid.NewString(), key.ChordSpread, key.AngleTenths, key.RadiusTenths, text, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save explanation: %w", err)
	}
	slog.Debug("explanation cached", "spread", key.ChordSpread, "angle_tenths", key.AngleTenths)
	return nil
}

// Recent returns the newest cached explanations, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := db.conn.SelectContext(ctx, &entries,
		"SELECT id, chord_spread, angle_tenths, radius_tenths, text, created_at FROM explanations ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return entries, err
}

var _ explain.Cache = (*DB)(nil)
