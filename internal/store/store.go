// Package store persists the three inventory collections as JSON blobs in
// a single key-value table. Every write is a whole-collection
// read-modify-write with last-writer-wins semantics: no merge, no
// optimistic concurrency check, no partial update. That is acceptable
// because the intended deployment has a single writer.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Fixed keys of the persisted collections.
const (
	locationsKey = "locations"
	boxesKey     = "boxes"
	itemsKey     = "items"
)

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// readCollection decodes the stored blob for key into out. A missing key
// yields an empty collection. A corrupt blob is unrecoverable in a flat
// key-value store, so it degrades to an empty collection with a logged
// warning instead of failing the read.
func (s *Store) readCollection(ctx context.Context, key string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM collections WHERE key = ?
	`, key).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		s.logger.Warn("collection blob is corrupt, treating as empty", "key", key, "error", err)
	}
	return nil
}

func (s *Store) writeCollection(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (key, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// upsert replaces the record whose id matches rec, preserving its position
// in the collection, or appends rec if no record matches.
func upsert[T any](records []T, rec T, idOf func(T) string) []T {
	for i := range records {
		if idOf(records[i]) == idOf(rec) {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}
