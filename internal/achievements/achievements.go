// Package achievements holds the static achievement catalog and the
// stateless rule evaluator. Definitions are never persisted; the
// progress record stores only granted IDs.
package achievements

import (
	"iqarena/internal/catalog"
	"iqarena/internal/progress"
)

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    func(p *progress.Progress) bool
}

var defs = []Achievement{
	{
		ID: "first_win", Name: "First Victory", Icon: "🏆",
		Description: "Win your first game",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalWins >= 1 },
	},
	{
		ID: "streak_3", Name: "On a Roll", Icon: "🔥",
		Description: "Win 3 games in a row",
		Unlocked:    func(p *progress.Progress) bool { return p.BestStreak >= 3 },
	},
	{
		ID: "streak_10", Name: "Unstoppable", Icon: "⚡",
		Description: "Win 10 games in a row",
		Unlocked:    func(p *progress.Progress) bool { return p.BestStreak >= 10 },
	},
	{
		ID: "games_10", Name: "Warming Up", Icon: "🎮",
		Description: "Play 10 games",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalGamesPlayed >= 10 },
	},
	{
		ID: "games_50", Name: "Regular", Icon: "🎯",
		Description: "Play 50 games",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalGamesPlayed >= 50 },
	},
	{
		ID: "games_100", Name: "Arena Veteran", Icon: "🛡️",
		Description: "Play 100 games",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalGamesPlayed >= 100 },
	},
	{
		ID: "wins_25", Name: "Quarter Century", Icon: "🥇",
		Description: "Win 25 games",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalWins >= 25 },
	},
	{
		ID: "level_5", Name: "Climbing", Icon: "📈",
		Description: "Reach level 5",
		Unlocked:    func(p *progress.Progress) bool { return p.Level >= 5 },
	},
	{
		ID: "level_10", Name: "High Flyer", Icon: "🚀",
		Description: "Reach level 10",
		Unlocked:    func(p *progress.Progress) bool { return p.Level >= 10 },
	},
	{
		ID: "level_max", Name: "Certified Genius", Icon: "👑",
		Description: "Reach the maximum level",
		Unlocked:    func(p *progress.Progress) bool { return p.Level >= catalog.MaxLevel },
	},
	{
		ID: "marathon_1h", Name: "Marathon Mind", Icon: "⏳",
		Description: "Play for a total of one hour",
		Unlocked:    func(p *progress.Progress) bool { return p.TotalTimePlayedSeconds >= 3600 },
	},
	{
		ID: "specialist", Name: "Specialist", Icon: "🔬",
		Description: "Win the same game 10 times",
		Unlocked: func(p *progress.Progress) bool {
			for _, gs := range p.GamesStats {
				if gs.Won >= 10 {
					return true
				}
			}
			return false
		},
	},
}

// Catalog returns the full static definition list.
func Catalog() []Achievement {
	return defs
}

// Evaluate returns the achievements whose predicate holds for p and
// whose ID is not already granted. Calling it twice against the same
// snapshot (with the first call's grants applied) yields nothing the
// second time.
func Evaluate(p *progress.Progress) []Achievement {
	var unlocked []Achievement
	for _, def := range defs {
		if p.HasAchievement(def.ID) {
			continue
		}
		if def.Unlocked(p) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
