// Package cache stores encoded media reports in SQLite so unchanged files are
// not parsed again.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	path       TEXT NOT NULL UNIQUE,
	size       INTEGER NOT NULL,
	mod_time   INTEGER NOT NULL,
	report     BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

// Key identifies one version of a file. A cached report is only returned
// when size and modification time still match.
type Key struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Store is a report cache backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache at dsn. Use ":memory:" for a throwaway
// cache.
func Open(ctx context.Context, dsn string) (*Store, error) {
	// modernc.org/sqlite: pure Go, no CGO
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate cache: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the report stored for key. ok is false when nothing is cached
// or the file changed since it was stored.
func (s *Store) Get(ctx context.Context, key Key) (data []byte, ok bool, err error) {
	var size, modTime int64
	err = s.db.QueryRowContext(ctx,
		`SELECT size, mod_time, report FROM reports WHERE path = ?`, key.Path,
	).Scan(&size, &modTime, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	if size != key.Size || modTime != key.ModTime.UnixNano() {
		return nil, false, nil
	}
	return data, true, nil
}

// Put stores data for key, replacing any earlier entry for the same path.
func (s *Store) Put(ctx context.Context, key Key, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, path, size, mod_time, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			id = excluded.id,
			size = excluded.size,
			mod_time = excluded.mod_time,
			report = excluded.report,
			created_at = excluded.created_at`,
		uuid.NewString(), key.Path, key.Size, key.ModTime.UnixNano(), data, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Prune removes entries stored before cutoff and returns how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	return res.RowsAffected()
}

// Len returns the number of cached reports.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
