// SPDX-License-Identifier: MIT
// Package: ninefold/store
//
// store.go — SQLite-backed report cache.

package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	cache_key    TEXT PRIMARY KEY,
	run_id       TEXT NOT NULL,
	fingerprint  TEXT NOT NULL,
	length       INTEGER NOT NULL,
	omega        REAL NOT NULL,
	level        TEXT NOT NULL,
	report_json  TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS reports_fingerprint ON reports(fingerprint);
`

// Entry describes one cached report without decoding it.
type Entry struct {
	Key         string    `json:"key" yaml:"key"`
	RunID       string    `json:"run_id" yaml:"run_id"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Length      int       `json:"length" yaml:"length"`
	Omega       float64   `json:"omega" yaml:"omega"`
	Level       string    `json:"level" yaml:"level"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages cached reports in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open: open db: %w", err)
	}
	// single connection; concurrent writers queue here instead of on SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: migrate: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key returns the cache key of seq under an engine with fingerprint fp.
func Key(seq digits.Sequence, fp string) string {
	h := sha256.New()
	h.Write([]byte(seq.String()))
	h.Write([]byte{0})
	h.Write([]byte(fp))

	return hex.EncodeToString(h.Sum(nil))
}

// Put stores rep under key, replacing any previous entry, and returns the
// new run id.
func (s *Store) Put(ctx context.Context, key string, rep *engine.Report) (string, error) {
	if rep == nil {
		return "", ErrNilReport
	}
	blob, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("store.Put: marshal report: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO reports
		 (cache_key, run_id, fingerprint, length, omega, level, report_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		key, id, rep.Fingerprint, rep.Length, rep.Omega, rep.Level.String(),
		string(blob), s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("store.Put: insert: %w", err)
	}

	return id, nil
}

// Get loads the report cached under key.
func (s *Store) Get(ctx context.Context, key string) (*engine.Report, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM reports WHERE cache_key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store.Get: query: %w", err)
	}
	var rep engine.Report
	if err := json.Unmarshal([]byte(blob), &rep); err != nil {
		return nil, fmt.Errorf("store.Get: unmarshal report: %w", err)
	}

	return &rep, nil
}

// Analyze returns the cached report for seq or computes and stores it.
// The boolean reports a cache hit.
func (s *Store) Analyze(ctx context.Context, e *engine.Engine, seq digits.Sequence) (*engine.Report, bool, error) {
	key := Key(seq, e.Fingerprint())
	rep, err := s.Get(ctx, key)
	if err == nil {
		return rep, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	rep, err = e.AnalyzeSequence(seq)
	if err != nil {
		return nil, false, err
	}
	if _, err := s.Put(ctx, key, rep); err != nil {
		return nil, false, err
	}

	return rep, false, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	q := `SELECT cache_key, run_id, fingerprint, length, omega, level, created_at
	      FROM reports ORDER BY created_at DESC, cache_key`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("store.List: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			ns int64
		)
		if err := rows.Scan(&e.Key, &e.RunID, &e.Fingerprint, &e.Length, &e.Omega, &e.Level, &ns); err != nil {
			return nil, fmt.Errorf("store.List: scan: %w", err)
		}
		e.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.List: rows: %w", err)
	}

	return out, nil
}

// Purge deletes every entry and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports`)
	if err != nil {
		return 0, fmt.Errorf("store.Purge: %w", err)
	}

	return res.RowsAffected()
}
