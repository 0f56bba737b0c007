package catalog

// MaxLevel is the top of the progression ladder. The catalog reports
// WinsRequired == 0 there, meaning no further leveling is possible.
const MaxLevel = 20

// levelsPerBand splits the ladder into five difficulty bands, one per
// tier: 1-4 easy, 5-8 medium, 9-12 hard, 13-16 expert, 17-20 legendary.
const levelsPerBand = 4

type LevelInfo struct {
	Level         int
	Name          string
	Icon          string
	WinsRequired  int // 0 only at MaxLevel: no further leveling
	Tier          Tier
	UnlockedGames []string
}

var bandNames = [...]string{"Rookie", "Thinker", "Strategist", "Mastermind", "Genius"}
var bandIcons = [...]string{"🌱", "💡", "🧭", "🧠", "👑"}
var bandWins = [...]int{3, 4, 5, 6, 8}
var romans = [...]string{"I", "II", "III", "IV"}

// unlockSchedule lists the games that become available at each level.
// Unlock sets are cumulative: reaching level n grants everything
// listed at levels <= n.
var unlockSchedule = map[int][]string{
	1:  {"memory_match", "word_scramble"},
	2:  {"math_sprint"},
	3:  {"minesweeper"},
	4:  {"simon_says"},
	5:  {"grid_chase"},
	6:  {"trivia"},
	8:  {"fact_or_fiction"},
	10: {"word_association"},
	12: {"riddles"},
}

// Level returns the catalog entry for the given level, clamped to
// [1, MaxLevel]. Pure and side-effect free; safe to call unboundedly.
func Level(level int) LevelInfo {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	band := (level - 1) / levelsPerBand
	wins := bandWins[band]
	if level == MaxLevel {
		wins = 0
	}
	return LevelInfo{
		Level:         level,
		Name:          bandNames[band] + " " + romans[(level-1)%levelsPerBand],
		Icon:          bandIcons[band],
		WinsRequired:  wins,
		Tier:          Tier(band),
		UnlockedGames: unlockedAt(level),
	}
}

func unlockedAt(level int) []string {
	var ids []string
	for l := 1; l <= level; l++ {
		ids = append(ids, unlockSchedule[l]...)
	}
	return ids
}
