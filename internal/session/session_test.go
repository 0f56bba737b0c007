package session

import (
	"errors"
	"testing"
	"time"

	"iqarena/internal/catalog"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestElapsedExcludesPausedTime(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock("memory_match", catalog.TierEasy, clock.Now)

	if got := s.ElapsedSeconds(); got != 0 {
		t.Fatalf("elapsed before start = %d, want 0", got)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	clock.Advance(2 * time.Second)
	if err := s.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	clock.Advance(3 * time.Second)
	if got := s.ElapsedSeconds(); got != 2 {
		t.Fatalf("elapsed while paused = %d, want 2", got)
	}
	if err := s.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	clock.Advance(1 * time.Second)
	if got := s.ElapsedSeconds(); got != 3 {
		t.Fatalf("elapsed after resume = %d, want 3", got)
	}
}

func TestEndWhilePausedClosesOpenPause(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock("trivia", catalog.TierHard, clock.Now)

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	clock.Advance(5 * time.Second)
	if err := s.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	clock.Advance(30 * time.Second)

	res, err := s.End(true, 80)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if res.Seconds != 5 {
		t.Fatalf("result seconds = %d, want 5 (pause excluded)", res.Seconds)
	}
	if res.GameID != "trivia" || !res.Won || res.Score != 80 || res.Tier != catalog.TierHard {
		t.Fatalf("result fields wrong: %+v", res)
	}
	if !res.Timestamp.Equal(clock.Now()) {
		t.Fatalf("timestamp = %v, want %v", res.Timestamp, clock.Now())
	}
}

func TestDoubleEndRejected(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock("grid_chase", catalog.TierMedium, clock.Now)

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.End(true, 100); err != nil {
		t.Fatalf("first end: %v", err)
	}
	if _, err := s.End(true, 100); !errors.Is(err, ErrAlreadyEnded) {
		t.Fatalf("second end: got %v, want ErrAlreadyEnded", err)
	}
	if s.State() != StateEnded {
		t.Fatalf("state after double end = %s, want ended", s.State())
	}
	// Elapsed time freezes at the end instant.
	frozen := s.ElapsedSeconds()
	clock.Advance(time.Minute)
	if got := s.ElapsedSeconds(); got != frozen {
		t.Fatalf("elapsed after end drifted: %d -> %d", frozen, got)
	}
}

func TestInvalidTransitions(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock("minesweeper", catalog.TierEasy, clock.Now)

	if err := s.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("pause from idle: got %v, want ErrNotRunning", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("resume from idle: got %v, want ErrNotPaused", err)
	}
	if _, err := s.End(false, 0); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("end from idle: got %v, want ErrNotStarted", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrNotIdle) {
		t.Fatalf("second start: got %v, want ErrNotIdle", err)
	}
	// Resume while running and pause while paused are silent no-ops.
	if err := s.Resume(); err != nil {
		t.Fatalf("resume while running: %v", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatalf("pause while paused: %v", err)
	}

	if _, err := s.End(false, 0); err != nil {
		t.Fatalf("end: %v", err)
	}
	if err := s.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("pause after end: got %v, want ErrNotRunning", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("resume after end: got %v, want ErrNotPaused", err)
	}
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a := New("trivia", catalog.TierEasy)
	b := New("trivia", catalog.TierEasy)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct non-empty session IDs, got %q and %q", a.ID(), b.ID())
	}
}
