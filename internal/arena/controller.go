package arena

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"iqarena/internal/catalog"
	"iqarena/internal/progress"
	"iqarena/internal/session"
	"iqarena/internal/telemetry"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrGameLocked  = errors.New("game not unlocked at current level")
)

// Controller is the orchestrator: constructed once per load, it owns
// the progress store, the result processor, and the current snapshot,
// and hands out session handles to mini-games. All state flows through
// it explicitly; there are no package-level singletons.
type Controller struct {
	cfg       Config
	logger    *telemetry.JSONLogger
	store     ProgressStore
	processor *Processor
	fallback  *progress.SQLiteTier

	mu      sync.Mutex
	current *progress.Progress
}

// NewController wires the three storage tiers under cfg.DataDir, loads
// the progress record, and returns a ready controller.
func NewController(ctx context.Context, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	local := progress.NewFileTier(cfg.DataDir)
	synced := progress.NewSyncTier(filepath.Join(cfg.DataDir, "sync.json"))
	fallback, err := progress.NewSQLiteTier(filepath.Join(cfg.DataDir, "fallback.db"))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if err := fallback.EnsureSchema(ctx); err != nil {
		_ = fallback.Close()
		_ = logger.Close()
		return nil, err
	}
	store := progress.NewStore(logger, local, synced, fallback)

	p, err := store.Load(ctx)
	if err != nil {
		_ = fallback.Close()
		_ = logger.Close()
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		fallback: fallback,
		current:  p,
	}
	c.processor = NewProcessor(store, logger)
	logger.Info("arena.start", map[string]any{"level": p.Level, "mode": cfg.Mode})
	return c, nil
}

func (c *Controller) Close() error {
	var err error
	if c.fallback != nil {
		err = c.fallback.Close()
	}
	if cerr := c.logger.Close(); err == nil {
		err = cerr
	}
	return err
}

// Snapshot returns a deep copy of the current progress record.
func (c *Controller) Snapshot() *progress.Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// LevelInfo returns the catalog entry for the player's current level.
func (c *Controller) LevelInfo() catalog.LevelInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalog.Level(c.current.Level)
}

func (c *Controller) setProgress(p *progress.Progress) {
	c.mu.Lock()
	c.current = p
	c.mu.Unlock()
}

// Launch starts a career-mode play-through: the game must exist and be
// unlocked at the player's level, and the difficulty tier is the
// level's own. The returned params bundle is opaque to the core.
func (c *Controller) Launch(gameID string) (*Handle, catalog.Params, error) {
	game, ok := catalog.Game(gameID)
	if !ok {
		return nil, catalog.Params{}, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}
	info := c.LevelInfo()
	if game.MinLevel > info.Level {
		return nil, catalog.Params{}, fmt.Errorf("%w: %q needs level %d, player is level %d",
			ErrGameLocked, gameID, game.MinLevel, info.Level)
	}
	h := &Handle{
		ctrl: c,
		sess: session.New(gameID, info.Tier),
		mode: ModeCareer,
	}
	c.logger.Info("game.launch", map[string]any{
		"session": h.sess.ID(), "game": gameID, "tier": info.Tier.String(), "mode": ModeCareer,
	})
	return h, catalog.ParamsForTier(info.Tier), nil
}

// LaunchFreePlay starts an ungated play-through at a player-chosen
// tier, with per-game custom settings merged over the tier defaults.
// Free-play outcomes never affect leveling.
func (c *Controller) LaunchFreePlay(gameID string, tier catalog.Tier, o catalog.Overrides) (*Handle, catalog.Params, error) {
	if _, ok := catalog.Game(gameID); !ok {
		return nil, catalog.Params{}, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}
	if !tier.Valid() {
		return nil, catalog.Params{}, fmt.Errorf("invalid tier %d", int(tier))
	}
	h := &Handle{
		ctrl: c,
		sess: session.New(gameID, tier),
		mode: ModeFree,
	}
	c.logger.Info("game.launch", map[string]any{
		"session": h.sess.ID(), "game": gameID, "tier": tier.String(), "mode": ModeFree,
	})
	return h, catalog.ParamsForTier(tier).Apply(o), nil
}

// Play runs a mini-game end to end against a fresh career-mode handle
// and returns the resulting update.
func (c *Controller) Play(ctx context.Context, g MiniGame) (*Update, error) {
	h, params, err := c.Launch(g.ID())
	if err != nil {
		return nil, err
	}
	if err := g.Play(ctx, params, h); err != nil {
		return nil, fmt.Errorf("mini-game %q: %w", g.ID(), err)
	}
	if h.Update() == nil {
		// The contract requires exactly one End call; a game that
		// returns without ending produced no result on purpose
		// (abandoned run, no partial credit).
		c.logger.Warn("game.no_result", map[string]any{"game": g.ID()})
	}
	return h.Update(), nil
}

// Reset wipes progress back to the default record on every tier.
func (c *Controller) Reset(ctx context.Context) (*progress.Progress, error) {
	p, err := c.store.Reset(ctx)
	if err != nil {
		return nil, err
	}
	c.setProgress(p)
	return p.Clone(), nil
}

// Export serializes the full progress record.
func (c *Controller) Export(ctx context.Context) ([]byte, error) {
	return c.store.Export(ctx)
}

// Import replaces the stored record after validation; a malformed
// payload leaves everything untouched.
func (c *Controller) Import(ctx context.Context, data []byte) (*progress.Progress, error) {
	p, err := c.store.Import(ctx, data)
	if err != nil {
		return nil, err
	}
	c.setProgress(p)
	return p.Clone(), nil
}
