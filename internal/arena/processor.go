package arena

import (
	"context"
	"fmt"

	"iqarena/internal/achievements"
	"iqarena/internal/catalog"
	"iqarena/internal/progress"
	"iqarena/internal/session"
	"iqarena/internal/telemetry"
)

// Update is what the UI layer reacts to after a game concludes: the
// new progress snapshot plus everything banner-worthy.
type Update struct {
	Progress        *progress.Progress
	LeveledUp       bool
	PreviousLevel   int
	NewAchievements []achievements.Achievement
}

// Processor is the single authorized mutation path for the player
// progress record. Everything else only reads snapshots.
type Processor struct {
	store  ProgressStore
	logger *telemetry.JSONLogger
}

func NewProcessor(store ProgressStore, logger *telemetry.JSONLogger) *Processor {
	return &Processor{store: store, logger: logger}
}

// Process folds one completed session outcome into the progress
// record, runs the achievement rules, persists, and reports the
// structured update. Free-play results count toward stats, streaks and
// achievements but never toward leveling.
func (pr *Processor) Process(ctx context.Context, res session.Result, mode string) (*Update, error) {
	p, err := pr.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("process result: %w", err)
	}
	previousLevel := p.Level

	p.TotalGamesPlayed++
	p.TotalTimePlayedSeconds += res.Seconds
	gs := p.GamesStats[res.GameID]
	gs.Played++

	if res.Won {
		p.TotalWins++
		p.CurrentStreak++
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
		gs.Won++
		if gs.BestTime == nil || res.Seconds < *gs.BestTime {
			seconds := res.Seconds
			gs.BestTime = &seconds
		}
		if gs.BestScore == nil || res.Score > *gs.BestScore {
			score := res.Score
			gs.BestScore = &score
		}
		if mode == ModeCareer {
			p.WinsAtCurrentLevel++
			info := catalog.Level(p.Level)
			// Excess wins past the exact threshold are discarded, not
			// carried into the next level's counter.
			if info.WinsRequired > 0 && p.WinsAtCurrentLevel >= info.WinsRequired && p.Level < catalog.MaxLevel {
				p.Level++
				p.WinsAtCurrentLevel = 0
			}
		}
	} else {
		p.TotalLosses++
		p.CurrentStreak = 0
	}
	p.GamesStats[res.GameID] = gs
	p.LastPlayedDate = res.Timestamp.UTC()

	newAchievements := achievements.Evaluate(p)
	for _, a := range newAchievements {
		p.Achievements = append(p.Achievements, a.ID)
	}

	if err := pr.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("process result: %w", err)
	}

	pr.logger.Info("result.processed", map[string]any{
		"game":         res.GameID,
		"won":          res.Won,
		"score":        res.Score,
		"seconds":      res.Seconds,
		"mode":         mode,
		"level":        p.Level,
		"leveled_up":   p.Level > previousLevel,
		"achievements": len(newAchievements),
	})

	return &Update{
		Progress:        p,
		LeveledUp:       p.Level > previousLevel,
		PreviousLevel:   previousLevel,
		NewAchievements: newAchievements,
	}, nil
}
