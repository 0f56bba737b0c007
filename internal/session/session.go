// Package session implements the per-play-through timing state machine.
// One session covers a single run of a single mini-game, from start to
// exactly one terminal outcome.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"iqarena/internal/catalog"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

var stateNames = [...]string{"idle", "running", "paused", "ended"}

func (s State) String() string {
	if s < StateIdle || s > StateEnded {
		return "unknown"
	}
	return stateNames[s]
}

var (
	ErrNotIdle      = errors.New("session already started")
	ErrNotStarted   = errors.New("session never started")
	ErrNotRunning   = errors.New("session is not running")
	ErrNotPaused    = errors.New("session is not paused")
	ErrAlreadyEnded = errors.New("session already ended")
)

// Result is the one outcome a session produces. It is folded into the
// player's progress record and discarded, never persisted on its own.
type Result struct {
	GameID    string
	Won       bool
	Score     int
	Seconds   int
	Tier      catalog.Tier
	Timestamp time.Time
}

// Session tracks logical play time for one run. Pausing stops only the
// elapsed-time accounting; wall-clock time keeps passing. The zero
// clock is time.Now; tests inject their own.
type Session struct {
	id     string
	gameID string
	tier   catalog.Tier
	clock  func() time.Time

	state       State
	startedAt   time.Time
	endedAt     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
}

func New(gameID string, tier catalog.Tier) *Session {
	return NewWithClock(gameID, tier, time.Now)
}

func NewWithClock(gameID string, tier catalog.Tier, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		id:     uuid.NewString(),
		gameID: gameID,
		tier:   tier,
		clock:  clock,
		state:  StateIdle,
	}
}

func (s *Session) ID() string         { return s.id }
func (s *Session) GameID() string     { return s.gameID }
func (s *Session) Tier() catalog.Tier { return s.tier }
func (s *Session) State() State       { return s.state }

// Start begins the run. Valid only from idle.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrNotIdle
	}
	s.startedAt = s.clock()
	s.pausedTotal = 0
	s.state = StateRunning
	return nil
}

// Pause suspends elapsed-time accounting. Pausing an already paused
// session is a no-op; pausing from idle or ended is a caller error.
func (s *Session) Pause() error {
	switch s.state {
	case StatePaused:
		return nil
	case StateRunning:
		s.pausedAt = s.clock()
		s.state = StatePaused
		return nil
	default:
		return ErrNotRunning
	}
}

// Resume folds the open pause into the accumulated paused duration.
// Resuming a running session is a no-op.
func (s *Session) Resume() error {
	switch s.state {
	case StateRunning:
		return nil
	case StatePaused:
		s.pausedTotal += s.clock().Sub(s.pausedAt)
		s.state = StateRunning
		return nil
	default:
		return ErrNotPaused
	}
}

// ElapsedSeconds returns whole logical seconds played so far. It is a
// pure read of session state, callable at any time (0 before Start)
// and safe for display polling.
func (s *Session) ElapsedSeconds() int {
	switch s.state {
	case StateIdle:
		return 0
	case StatePaused:
		return int((s.pausedAt.Sub(s.startedAt) - s.pausedTotal) / time.Second)
	case StateEnded:
		return int((s.endedAt.Sub(s.startedAt) - s.pausedTotal) / time.Second)
	default:
		return int((s.clock().Sub(s.startedAt) - s.pausedTotal) / time.Second)
	}
}

// End concludes the run and freezes the result. Exactly one call is
// valid; a second call returns ErrAlreadyEnded so the outcome is never
// double-counted.
func (s *Session) End(won bool, score int) (Result, error) {
	switch s.state {
	case StateEnded:
		return Result{}, ErrAlreadyEnded
	case StateIdle:
		return Result{}, ErrNotStarted
	case StatePaused:
		// Close the open pause so the final accounting excludes it.
		s.pausedTotal += s.clock().Sub(s.pausedAt)
		s.state = StateRunning
	}
	s.endedAt = s.clock()
	s.state = StateEnded
	return Result{
		GameID:    s.gameID,
		Won:       won,
		Score:     score,
		Seconds:   s.ElapsedSeconds(),
		Tier:      s.tier,
		Timestamp: s.endedAt,
	}, nil
}
