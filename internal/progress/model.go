package progress

import (
	"fmt"
	"time"
)

// GameStats is the per-game slice of the aggregate. BestTime and
// BestScore stay nil until the game is won at least once.
type GameStats struct {
	Played    int  `json:"played"`
	Won       int  `json:"won"`
	BestTime  *int `json:"bestTime,omitempty"`
	BestScore *int `json:"bestScore,omitempty"`
}

// Progress is the single persisted player aggregate. Field names keep
// the camelCase wire form the extension stores.
type Progress struct {
	Level                  int                  `json:"level"`
	WinsAtCurrentLevel     int                  `json:"winsAtCurrentLevel"`
	TotalGamesPlayed       int                  `json:"totalGamesPlayed"`
	TotalWins              int                  `json:"totalWins"`
	TotalLosses            int                  `json:"totalLosses"`
	CurrentStreak          int                  `json:"currentStreak"`
	BestStreak             int                  `json:"bestStreak"`
	TotalTimePlayedSeconds int                  `json:"totalTimePlayedSeconds"`
	GamesStats             map[string]GameStats `json:"gamesStats"`
	Achievements           []string             `json:"achievements"`
	LastPlayedDate         time.Time            `json:"lastPlayedDate"`
	CreatedAt              time.Time            `json:"createdAt"`
}

// New returns the default record for a player with no stored history.
func New(now time.Time) *Progress {
	return &Progress{
		Level:          1,
		GamesStats:     map[string]GameStats{},
		Achievements:   []string{},
		LastPlayedDate: now.UTC(),
		CreatedAt:      now.UTC(),
	}
}

// Validate checks structural invariants. Import relies on this to
// reject malformed payloads before anything is written.
func (p *Progress) Validate() error {
	if p == nil {
		return fmt.Errorf("progress record is nil")
	}
	if p.Level < 1 {
		return fmt.Errorf("level %d out of range", p.Level)
	}
	if p.WinsAtCurrentLevel < 0 || p.TotalGamesPlayed < 0 || p.TotalWins < 0 ||
		p.TotalLosses < 0 || p.CurrentStreak < 0 || p.BestStreak < 0 ||
		p.TotalTimePlayedSeconds < 0 {
		return fmt.Errorf("negative counter")
	}
	if p.TotalGamesPlayed != p.TotalWins+p.TotalLosses {
		return fmt.Errorf("games played %d != wins %d + losses %d",
			p.TotalGamesPlayed, p.TotalWins, p.TotalLosses)
	}
	if p.BestStreak < p.CurrentStreak {
		return fmt.Errorf("best streak %d below current streak %d", p.BestStreak, p.CurrentStreak)
	}
	for id, gs := range p.GamesStats {
		if id == "" {
			return fmt.Errorf("empty game id in stats")
		}
		if gs.Played < 0 || gs.Won < 0 || gs.Won > gs.Played {
			return fmt.Errorf("game %q stats out of range (played %d, won %d)", id, gs.Played, gs.Won)
		}
	}
	seen := map[string]struct{}{}
	for _, id := range p.Achievements {
		if id == "" {
			return fmt.Errorf("empty achievement id")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate achievement id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the stored record.
func (p *Progress) Clone() *Progress {
	if p == nil {
		return nil
	}
	out := *p
	out.GamesStats = make(map[string]GameStats, len(p.GamesStats))
	for id, gs := range p.GamesStats {
		cp := gs
		if gs.BestTime != nil {
			v := *gs.BestTime
			cp.BestTime = &v
		}
		if gs.BestScore != nil {
			v := *gs.BestScore
			cp.BestScore = &v
		}
		out.GamesStats[id] = cp
	}
	out.Achievements = append([]string(nil), p.Achievements...)
	return &out
}

// HasAchievement reports whether id was already granted.
func (p *Progress) HasAchievement(id string) bool {
	for _, got := range p.Achievements {
		if got == id {
			return true
		}
	}
	return false
}
