package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"iqarena/internal/telemetry"
)

// Store fans a single player record out across storage tiers. Reads
// walk the tiers in order and take the first hit; writes go through to
// every tier best-effort. Consistency across tiers is deliberately
// last-writer-wins with no merge: there is a single interactive player
// and no concurrent-writer scenario by design.
type Store struct {
	tiers  []Tier
	logger *telemetry.JSONLogger
	clock  func() time.Time
}

// NewStore builds a store over the given tiers, listed in load order
// (fastest and most trusted first).
func NewStore(logger *telemetry.JSONLogger, tiers ...Tier) *Store {
	return &Store{tiers: tiers, logger: logger, clock: time.Now}
}

// Load returns the first record any tier yields, falling back to a
// fresh default when every tier is empty or failing. Read failures are
// logged and skipped, never surfaced.
func (s *Store) Load(ctx context.Context) (*Progress, error) {
	for _, tier := range s.tiers {
		p, err := tier.Load(ctx)
		if err != nil {
			s.logger.Warn("progress.load_tier_failed", map[string]any{
				"tier": tier.Name(), "error": err.Error(),
			})
			continue
		}
		if p != nil {
			return p, nil
		}
	}
	return New(s.clock()), nil
}

// Save writes the record through to every tier. A secondary-tier
// failure (typically the sync tier's quota) is logged and swallowed;
// Save only errors when no tier at all accepted the write.
func (s *Store) Save(ctx context.Context, p *Progress) error {
	saved := 0
	var firstErr error
	for _, tier := range s.tiers {
		if err := tier.Save(ctx, p); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Warn("progress.save_tier_failed", map[string]any{
				"tier": tier.Name(), "error": err.Error(),
			})
			continue
		}
		saved++
	}
	if saved == 0 {
		return fmt.Errorf("progress save failed on all %d tiers: %w", len(s.tiers), firstErr)
	}
	return nil
}

// Reset overwrites every tier with a fresh default record and returns it.
func (s *Store) Reset(ctx context.Context) (*Progress, error) {
	fresh := New(s.clock())
	if err := s.Save(ctx, fresh); err != nil {
		return nil, err
	}
	s.logger.Info("progress.reset", nil)
	return fresh, nil
}

// Export serializes the full current record.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(p, "", "  ")
}

// Import validates data before committing it. A malformed payload
// returns ErrMalformedPayload and leaves the stored record untouched.
func (s *Store) Import(ctx context.Context, data []byte) (*Progress, error) {
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if p.GamesStats == nil {
		p.GamesStats = map[string]GameStats{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := s.Save(ctx, &p); err != nil {
		return nil, err
	}
	s.logger.Info("progress.imported", map[string]any{"level": p.Level})
	return &p, nil
}
