package arena

import (
	"context"
	"testing"
	"time"

	"iqarena/internal/catalog"
	"iqarena/internal/progress"
	"iqarena/internal/session"
	"iqarena/internal/telemetry"
)

// memStore keeps the record in memory so processor tests need no disk.
type memStore struct {
	p *progress.Progress
}

func newMemStore() *memStore {
	return &memStore{p: progress.New(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))}
}

func (m *memStore) Load(context.Context) (*progress.Progress, error) { return m.p.Clone(), nil }
func (m *memStore) Save(_ context.Context, p *progress.Progress) error {
	m.p = p.Clone()
	return nil
}
func (m *memStore) Reset(context.Context) (*progress.Progress, error) {
	m.p = progress.New(time.Now())
	return m.p.Clone(), nil
}
func (m *memStore) Export(context.Context) ([]byte, error)                      { return nil, nil }
func (m *memStore) Import(context.Context, []byte) (*progress.Progress, error) { return nil, nil }

func newTestProcessor(t *testing.T) (*Processor, *memStore) {
	t.Helper()
	logger, err := telemetry.NewJSONLogger("")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	store := newMemStore()
	return NewProcessor(store, logger), store
}

func result(gameID string, won bool, score, seconds int) session.Result {
	return session.Result{
		GameID:    gameID,
		Won:       won,
		Score:     score,
		Seconds:   seconds,
		Tier:      catalog.TierEasy,
		Timestamp: time.Date(2026, time.August, 2, 15, 0, 0, 0, time.UTC),
	}
}

func TestConsecutiveWinsLevelUp(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	threshold := catalog.Level(1).WinsRequired
	var last *Update
	for i := 0; i < threshold; i++ {
		var err error
		last, err = proc.Process(ctx, result("memory_match", true, 100, 30), ModeCareer)
		if err != nil {
			t.Fatalf("process win %d: %v", i+1, err)
		}
	}

	if !last.LeveledUp || last.PreviousLevel != 1 {
		t.Fatalf("expected level-up from 1 after %d wins, got %+v", threshold, last)
	}
	p := store.p
	if p.Level != 2 {
		t.Fatalf("level = %d, want 2", p.Level)
	}
	if p.WinsAtCurrentLevel != 0 {
		t.Fatalf("winsAtCurrentLevel = %d, want 0 after level-up", p.WinsAtCurrentLevel)
	}
	if p.TotalWins != threshold || p.CurrentStreak != threshold {
		t.Fatalf("totalWins = %d, currentStreak = %d, want both %d", p.TotalWins, p.CurrentStreak, threshold)
	}
	if p.TotalGamesPlayed != p.TotalWins+p.TotalLosses {
		t.Fatalf("games played invariant broken: %+v", p)
	}
}

func TestLossResetsStreakKeepsBest(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := proc.Process(ctx, result("trivia", true, 50, 20), ModeFree); err != nil {
			t.Fatalf("process win: %v", err)
		}
	}
	if _, err := proc.Process(ctx, result("trivia", false, 0, 20), ModeFree); err != nil {
		t.Fatalf("process loss: %v", err)
	}

	p := store.p
	if p.CurrentStreak != 0 {
		t.Fatalf("currentStreak = %d, want 0 after loss", p.CurrentStreak)
	}
	if p.BestStreak != 4 {
		t.Fatalf("bestStreak = %d, want 4", p.BestStreak)
	}
	if p.TotalLosses != 1 || p.TotalGamesPlayed != 5 {
		t.Fatalf("counters wrong: %+v", p)
	}
}

func TestFreePlayNeverLevels(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := proc.Process(ctx, result("math_sprint", true, 10, 5), ModeFree); err != nil {
			t.Fatalf("process: %v", err)
		}
	}
	p := store.p
	if p.Level != 1 || p.WinsAtCurrentLevel != 0 {
		t.Fatalf("free play moved leveling state: level %d, wins %d", p.Level, p.WinsAtCurrentLevel)
	}
	if p.TotalWins != 10 {
		t.Fatalf("free play wins not counted: %d", p.TotalWins)
	}
}

func TestBestTimeAndBestScoreOnlyImprove(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	if _, err := proc.Process(ctx, result("minesweeper", true, 300, 60), ModeFree); err != nil {
		t.Fatalf("process: %v", err)
	}
	if _, err := proc.Process(ctx, result("minesweeper", true, 200, 90), ModeFree); err != nil {
		t.Fatalf("process: %v", err)
	}
	if _, err := proc.Process(ctx, result("minesweeper", true, 500, 45), ModeFree); err != nil {
		t.Fatalf("process: %v", err)
	}

	gs := store.p.GamesStats["minesweeper"]
	if gs.BestTime == nil || *gs.BestTime != 45 {
		t.Fatalf("bestTime = %v, want 45", gs.BestTime)
	}
	if gs.BestScore == nil || *gs.BestScore != 500 {
		t.Fatalf("bestScore = %v, want 500", gs.BestScore)
	}
	if gs.Played != 3 || gs.Won != 3 {
		t.Fatalf("per-game counters wrong: %+v", gs)
	}
}

func TestLossDoesNotTouchBestMarks(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	if _, err := proc.Process(ctx, result("grid_chase", true, 100, 30), ModeFree); err != nil {
		t.Fatalf("process win: %v", err)
	}
	if _, err := proc.Process(ctx, result("grid_chase", false, 999, 5), ModeFree); err != nil {
		t.Fatalf("process loss: %v", err)
	}

	gs := store.p.GamesStats["grid_chase"]
	if gs.BestScore == nil || *gs.BestScore != 100 {
		t.Fatalf("loss overwrote bestScore: %v", gs.BestScore)
	}
	if gs.BestTime == nil || *gs.BestTime != 30 {
		t.Fatalf("loss overwrote bestTime: %v", gs.BestTime)
	}
}

func TestAchievementsAppendOnly(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	up, err := proc.Process(ctx, result("word_scramble", true, 10, 10), ModeFree)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	found := false
	for _, a := range up.NewAchievements {
		if a.ID == "first_win" {
			found = true
		}
	}
	if !found {
		t.Fatalf("first win did not grant first_win: %+v", up.NewAchievements)
	}

	before := len(store.p.Achievements)
	for i := 0; i < 5; i++ {
		up, err = proc.Process(ctx, result("word_scramble", false, 0, 10), ModeFree)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
	}
	if len(store.p.Achievements) < before {
		t.Fatalf("achievements shrank: %d -> %d", before, len(store.p.Achievements))
	}
	for _, a := range up.NewAchievements {
		if a.ID == "first_win" {
			t.Fatalf("first_win granted twice")
		}
	}
}

func TestTimePlayedMonotone(t *testing.T) {
	proc, store := newTestProcessor(t)
	ctx := context.Background()

	total := 0
	for _, seconds := range []int{30, 0, 125} {
		if _, err := proc.Process(ctx, result("simon_says", false, 0, seconds), ModeFree); err != nil {
			t.Fatalf("process: %v", err)
		}
		total += seconds
		if store.p.TotalTimePlayedSeconds != total {
			t.Fatalf("totalTimePlayedSeconds = %d, want %d", store.p.TotalTimePlayedSeconds, total)
		}
	}
}
