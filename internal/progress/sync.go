package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SyncQuotaBytes matches the platform's per-item quota for the
// synchronized storage area.
const SyncQuotaBytes = 8192

// syncedRecord is the reduced field set mirrored to the synchronized
// tier. Per-game stats are the unbounded part of the aggregate and are
// deliberately omitted to stay under quota; everything else keeps the
// same wire names as the full record.
type syncedRecord struct {
	Level                  int       `json:"level"`
	WinsAtCurrentLevel     int       `json:"winsAtCurrentLevel"`
	TotalGamesPlayed       int       `json:"totalGamesPlayed"`
	TotalWins              int       `json:"totalWins"`
	TotalLosses            int       `json:"totalLosses"`
	CurrentStreak          int       `json:"currentStreak"`
	BestStreak             int       `json:"bestStreak"`
	TotalTimePlayedSeconds int       `json:"totalTimePlayedSeconds"`
	Achievements           []string  `json:"achievements"`
	LastPlayedDate         time.Time `json:"lastPlayedDate"`
	CreatedAt              time.Time `json:"createdAt"`
}

// SyncTier is the quota-limited, cross-device synchronized tier. The
// write budget is enforced locally so a record that would blow the
// platform quota degrades here instead of failing the whole save.
type SyncTier struct {
	path  string
	quota int
}

func NewSyncTier(path string) *SyncTier {
	return &SyncTier{path: path, quota: SyncQuotaBytes}
}

func (t *SyncTier) Name() string { return "sync" }

func (t *SyncTier) Load(_ context.Context) (*Progress, error) {
	b, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("sync tier load: %w", err)
	}
	var rec syncedRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("sync tier decode: %w", err)
	}
	p := &Progress{
		Level:                  rec.Level,
		WinsAtCurrentLevel:     rec.WinsAtCurrentLevel,
		TotalGamesPlayed:       rec.TotalGamesPlayed,
		TotalWins:              rec.TotalWins,
		TotalLosses:            rec.TotalLosses,
		CurrentStreak:          rec.CurrentStreak,
		BestStreak:             rec.BestStreak,
		TotalTimePlayedSeconds: rec.TotalTimePlayedSeconds,
		GamesStats:             map[string]GameStats{},
		Achievements:           rec.Achievements,
		LastPlayedDate:         rec.LastPlayedDate,
		CreatedAt:              rec.CreatedAt,
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("sync tier record invalid: %w", err)
	}
	return p, nil
}

func (t *SyncTier) Save(_ context.Context, p *Progress) error {
	rec := syncedRecord{
		Level:                  p.Level,
		WinsAtCurrentLevel:     p.WinsAtCurrentLevel,
		TotalGamesPlayed:       p.TotalGamesPlayed,
		TotalWins:              p.TotalWins,
		TotalLosses:            p.TotalLosses,
		CurrentStreak:          p.CurrentStreak,
		BestStreak:             p.BestStreak,
		TotalTimePlayedSeconds: p.TotalTimePlayedSeconds,
		Achievements:           p.Achievements,
		LastPlayedDate:         p.LastPlayedDate,
		CreatedAt:              p.CreatedAt,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if len(b) > t.quota {
		return fmt.Errorf("sync tier save (%d bytes over %d): %w", len(b), t.quota, ErrQuotaExceeded)
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	if err := writeAtomic(t.path, b); err != nil {
		return fmt.Errorf("sync tier save: %w", err)
	}
	return nil
}

func (t *SyncTier) Clear(_ context.Context) error {
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
