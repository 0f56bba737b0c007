package catalog

import "sort"

type GameInfo struct {
	ID         string
	Name       string
	Icon       string
	Category   string
	RequiresAI bool // content is fetched from the language-model backend
	MinLevel   int
}

// registry is the static game catalog. MinLevel mirrors the level at
// which unlockSchedule grants the game; the two are cross-checked in
// tests rather than derived so each table stays readable on its own.
var registry = map[string]GameInfo{
	"memory_match":     {ID: "memory_match", Name: "Memory Match", Icon: "🃏", Category: "memory", MinLevel: 1},
	"word_scramble":    {ID: "word_scramble", Name: "Word Scramble", Icon: "🔤", Category: "word", MinLevel: 1},
	"math_sprint":      {ID: "math_sprint", Name: "Math Sprint", Icon: "➗", Category: "math", MinLevel: 2},
	"minesweeper":      {ID: "minesweeper", Name: "Minesweeper", Icon: "💣", Category: "logic", MinLevel: 3},
	"simon_says":       {ID: "simon_says", Name: "Simon Says", Icon: "🎵", Category: "memory", MinLevel: 4},
	"grid_chase":       {ID: "grid_chase", Name: "Grid Chase", Icon: "🏃", Category: "reflex", MinLevel: 5},
	"trivia":           {ID: "trivia", Name: "Trivia Challenge", Icon: "❓", Category: "knowledge", RequiresAI: true, MinLevel: 6},
	"fact_or_fiction":  {ID: "fact_or_fiction", Name: "Fact or Fiction", Icon: "⚖️", Category: "knowledge", RequiresAI: true, MinLevel: 8},
	"word_association": {ID: "word_association", Name: "Word Association", Icon: "🔗", Category: "word", RequiresAI: true, MinLevel: 10},
	"riddles":          {ID: "riddles", Name: "Riddle Me This", Icon: "🗿", Category: "knowledge", RequiresAI: true, MinLevel: 12},
}

// Game looks up a game by identifier.
func Game(id string) (GameInfo, bool) {
	g, ok := registry[id]
	return g, ok
}

// Games returns every registered game sorted by unlock level, then ID.
func Games() []GameInfo {
	out := make([]GameInfo, 0, len(registry))
	for _, g := range registry {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MinLevel != out[j].MinLevel {
			return out[i].MinLevel < out[j].MinLevel
		}
		return out[i].ID < out[j].ID
	})
	return out
}
