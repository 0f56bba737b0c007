package progress

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		mutate  func(*Progress)
		wantErr bool
	}{
		{"default record", func(p *Progress) {}, false},
		{"zero level", func(p *Progress) { p.Level = 0 }, true},
		{"negative wins", func(p *Progress) { p.TotalWins = -1 }, true},
		{"played != wins+losses", func(p *Progress) { p.TotalGamesPlayed = 3; p.TotalWins = 1; p.TotalLosses = 1 }, true},
		{"best streak below current", func(p *Progress) { p.CurrentStreak = 4; p.BestStreak = 2 }, true},
		{"won above played", func(p *Progress) { p.GamesStats["trivia"] = GameStats{Played: 1, Won: 2} }, true},
		{"duplicate achievement", func(p *Progress) { p.Achievements = []string{"first_win", "first_win"} }, true},
		{"consistent record", func(p *Progress) {
			p.TotalGamesPlayed = 5
			p.TotalWins = 3
			p.TotalLosses = 2
			p.CurrentStreak = 2
			p.BestStreak = 3
			p.GamesStats["trivia"] = GameStats{Played: 5, Won: 3}
			p.Achievements = []string{"first_win"}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(now)
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	now := time.Now()
	bt := 30
	p := New(now)
	p.GamesStats["minesweeper"] = GameStats{Played: 2, Won: 1, BestTime: &bt}
	p.Achievements = []string{"first_win"}

	c := p.Clone()
	*c.GamesStats["minesweeper"].BestTime = 99
	c.GamesStats["grid_chase"] = GameStats{Played: 1}
	c.Achievements[0] = "changed"

	if *p.GamesStats["minesweeper"].BestTime != 30 {
		t.Fatalf("clone shares BestTime pointer")
	}
	if _, ok := p.GamesStats["grid_chase"]; ok {
		t.Fatalf("clone shares GamesStats map")
	}
	if p.Achievements[0] != "first_win" {
		t.Fatalf("clone shares achievements slice")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	now := time.Date(2026, time.April, 2, 8, 30, 0, 0, time.UTC)
	score := 1200
	p := New(now)
	p.Level = 7
	p.WinsAtCurrentLevel = 2
	p.TotalGamesPlayed = 40
	p.TotalWins = 25
	p.TotalLosses = 15
	p.CurrentStreak = 3
	p.BestStreak = 9
	p.TotalTimePlayedSeconds = 5400
	p.GamesStats["trivia"] = GameStats{Played: 12, Won: 8, BestScore: &score}
	p.Achievements = []string{"first_win", "streak_3"}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Progress
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Level != 7 || got.BestStreak != 9 || got.TotalTimePlayedSeconds != 5400 {
		t.Fatalf("scalar fields lost in round trip: %+v", got)
	}
	gs := got.GamesStats["trivia"]
	if gs.Played != 12 || gs.Won != 8 || gs.BestScore == nil || *gs.BestScore != 1200 {
		t.Fatalf("game stats lost in round trip: %+v", gs)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v vs %v", got.CreatedAt, p.CreatedAt)
	}
}
