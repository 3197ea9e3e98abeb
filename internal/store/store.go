// Package store persists enriched posts to SQLite so the dataset can be
// inspected without re-running the pipeline.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/postprep/postprep/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	text       TEXT    NOT NULL,
	engagement INTEGER NOT NULL DEFAULT 0,
	line_count INTEGER NOT NULL,
	language   TEXT    NOT NULL,
	tags       TEXT    NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_posts_language ON posts(language);
`

// Store wraps the posts database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Replace wipes the table and inserts the given posts in one transaction.
// The pipeline always writes a full dataset, never increments.
func (s *Store) Replace(ctx context.Context, posts []model.EnrichedPost) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO posts (text, engagement, line_count, language, tags) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range posts {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, p.Text, p.Engagement, p.LineCount, p.Language, string(tags)); err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored posts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// LanguageCounts returns posts-per-language, most frequent first.
func (s *Store) LanguageCounts(ctx context.Context) ([]KV, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT language, COUNT(*) FROM posts GROUP BY language ORDER BY COUNT(*) DESC, language`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanKVs(rows)
}

// TagCounts returns posts-per-tag, most frequent first. Tags are stored as a
// JSON array per post and unnested with SQLite's json_each.
func (s *Store) TagCounts(ctx context.Context) ([]KV, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT je.value, COUNT(*)
FROM posts, json_each(posts.tags) AS je
GROUP BY je.value
ORDER BY COUNT(*) DESC, je.value`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanKVs(rows)
}

// KV is a label with an occurrence count.
type KV struct {
	Key   string
	Count int
}

func scanKVs(rows *sql.Rows) ([]KV, error) {
	var out []KV
	for rows.Next() {
		var kv KV
		if err := rows.Scan(&kv.Key, &kv.Count); err != nil {
			return nil, err
		}
		out = append(out, kv)
	}
	return out, rows.Err()
}
