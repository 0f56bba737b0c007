package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	progressKey       = "iq_arena_progress"
	progressBackupKey = "iq_arena_progress_backup"
	timeLayout        = "2006-01-02T15:04:05Z07:00"
)

// SQLiteTier is the fallback same-origin tier, used when the
// extension-provided storage areas are unavailable. It keeps the full
// record under a primary and a backup key.
type SQLiteTier struct {
	db *sql.DB
}

func NewSQLiteTier(path string) (*SQLiteTier, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteTier{db: db}, nil
}

func (t *SQLiteTier) EnsureSchema(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS arena_progress (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_ts TEXT NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (t *SQLiteTier) Name() string { return "fallback" }

func (t *SQLiteTier) Load(ctx context.Context) (*Progress, error) {
	p, err := t.loadKey(ctx, progressKey)
	if err == nil {
		return p, nil
	}
	// Primary row missing or corrupt: try the backup key before
	// giving up on this tier.
	if p, berr := t.loadKey(ctx, progressBackupKey); berr == nil {
		return p, nil
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return nil, fmt.Errorf("fallback tier load: %w", err)
}

func (t *SQLiteTier) loadKey(ctx context.Context, key string) (*Progress, error) {
	var payload string
	row := t.db.QueryRowContext(ctx, `SELECT payload FROM arena_progress WHERE key = ?`, key)
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	var p Progress
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *SQLiteTier) Save(ctx context.Context, p *Progress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	now := time.Now().UTC().Format(timeLayout)
	for _, key := range []string{progressKey, progressBackupKey} {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO arena_progress(key, payload, updated_ts) VALUES(?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				payload = excluded.payload,
				updated_ts = excluded.updated_ts
		`, key, string(b), now); err != nil {
			return fmt.Errorf("fallback tier save %q: %w", key, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (t *SQLiteTier) Clear(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `DELETE FROM arena_progress WHERE key IN (?, ?)`,
		progressKey, progressBackupKey)
	return err
}

func (t *SQLiteTier) Close() error {
	if t.db == nil {
		return nil
	}
	return t.db.Close()
}
