package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	primaryFile = "progress.json"
	backupFile  = "progress.backup.json"
)

// FileTier is the fast local tier: a full JSON copy of the record plus
// an identical backup copy, private to this installation.
type FileTier struct {
	dir string
}

func NewFileTier(dir string) *FileTier {
	return &FileTier{dir: dir}
}

func (t *FileTier) Name() string { return "local" }

func (t *FileTier) Load(_ context.Context) (*Progress, error) {
	p, err := readRecord(filepath.Join(t.dir, primaryFile))
	if err == nil {
		return p, nil
	}
	// Primary unreadable or corrupt: fall back to the backup copy.
	p, berr := readRecord(filepath.Join(t.dir, backupFile))
	if berr == nil {
		return p, nil
	}
	if os.IsNotExist(err) && os.IsNotExist(berr) {
		return nil, nil
	}
	return nil, fmt.Errorf("local tier load: %w", err)
}

func (t *FileTier) Save(_ context.Context, p *Progress) error {
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(t.dir, primaryFile), b); err != nil {
		return fmt.Errorf("local tier save: %w", err)
	}
	if err := writeAtomic(filepath.Join(t.dir, backupFile), b); err != nil {
		return fmt.Errorf("local tier backup save: %w", err)
	}
	return nil
}

func (t *FileTier) Clear(_ context.Context) error {
	for _, name := range []string{primaryFile, backupFile} {
		if err := os.Remove(filepath.Join(t.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func readRecord(path string) (*Progress, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Progress
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
