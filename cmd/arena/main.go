package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	clog "github.com/charmbracelet/log"

	"iqarena/internal/arena"
	"iqarena/internal/catalog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		dataDir    = flag.String("data", "", "data directory (overrides config)")
		logPath    = flag.String("log", "", "telemetry log path (overrides config)")
		gameID     = flag.String("game", "memory_match", "game to play")
		mode       = flag.String("mode", "", "career or free (overrides config)")
		tierName   = flag.String("tier", "", "free-play difficulty tier (overrides config)")
		rounds     = flag.Int("rounds", 1, "number of demo rounds to play")
	)
	flag.Parse()

	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "iqarena"})

	cfg, err := arena.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *tierName != "" {
		cfg.FreePlayTier = *tierName
	}

	ctx := context.Background()
	ctrl, err := arena.NewController(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = ctrl.Close() }()

	info := ctrl.LevelInfo()
	logger.Info("welcome to the arena",
		"level", info.Level, "rank", info.Name, "tier", info.Tier.String(),
		"unlocked", len(info.UnlockedGames))

	for i := 0; i < *rounds; i++ {
		up, err := playRound(ctx, ctrl, cfg, *gameID, time.Now().UnixNano()+int64(i))
		if err != nil {
			return err
		}
		if up == nil {
			continue
		}
		report(logger, up)
	}

	p := ctrl.Snapshot()
	logger.Info("career summary",
		"level", p.Level, "played", p.TotalGamesPlayed, "wins", p.TotalWins,
		"losses", p.TotalLosses, "best_streak", p.BestStreak,
		"achievements", len(p.Achievements))
	return nil
}

func playRound(ctx context.Context, ctrl *arena.Controller, cfg arena.Config, gameID string, seed int64) (*arena.Update, error) {
	game := arena.NewDemoGame(gameID, seed)
	if cfg.Mode != arena.ModeFree {
		return ctrl.Play(ctx, game)
	}
	tier, err := catalog.ParseTier(cfg.FreePlayTier)
	if err != nil {
		return nil, err
	}
	h, params, err := ctrl.LaunchFreePlay(gameID, tier, catalog.Overrides{})
	if err != nil {
		return nil, err
	}
	if err := game.Play(ctx, params, h); err != nil {
		return nil, err
	}
	return h.Update(), nil
}

func report(logger *clog.Logger, up *arena.Update) {
	if up.LeveledUp {
		info := catalog.Level(up.Progress.Level)
		logger.Info("level up!", "from", up.PreviousLevel, "to", info.Level, "rank", info.Name)
	}
	for _, a := range up.NewAchievements {
		logger.Info("achievement unlocked", "id", a.ID, "name", a.Name)
	}
}
