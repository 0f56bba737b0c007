package arena

import (
	"context"
	"math/rand"

	"iqarena/internal/catalog"
)

// DemoGame is a scripted stand-in mini-game used by the CLI to
// exercise the full session pipeline without any rendering. It "plays"
// a memory-match round: the harder the params, the lower its odds.
type DemoGame struct {
	gameID string
	rng    *rand.Rand
}

func NewDemoGame(gameID string, seed int64) *DemoGame {
	return &DemoGame{gameID: gameID, rng: rand.New(rand.NewSource(seed))}
}

func (g *DemoGame) ID() string { return g.gameID }

func (g *DemoGame) Play(ctx context.Context, params catalog.Params, h *Handle) error {
	if err := h.Start(); err != nil {
		return err
	}
	// Flip pairs until done or out of luck. Win odds shrink with the
	// board size.
	flips := params.PairCount + g.rng.Intn(params.PairCount+1)
	won := g.rng.Intn(params.PairCount+4) >= params.PairCount/2
	score := 0
	if won {
		score = params.PairCount*100 - flips*5
		if score < 0 {
			score = 0
		}
	}
	_, err := h.End(ctx, won, score)
	return err
}
