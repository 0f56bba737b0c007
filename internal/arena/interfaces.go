package arena

import (
	"context"

	"iqarena/internal/catalog"
	"iqarena/internal/progress"
)

// ProgressStore is the persistence surface the controller and result
// processor depend on. *progress.Store satisfies it; tests may swap in
// a stub.
type ProgressStore interface {
	Load(ctx context.Context) (*progress.Progress, error)
	Save(ctx context.Context, p *progress.Progress) error
	Reset(ctx context.Context) (*progress.Progress, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (*progress.Progress, error)
}

// MiniGame is the capability boundary behind which all game rules and
// rendering live. A mini-game receives its difficulty bundle and a
// live session handle; it may drive Start/Pause/Resume freely and must
// call End exactly once. The core never inspects how the outcome was
// computed.
type MiniGame interface {
	ID() string
	Play(ctx context.Context, params catalog.Params, h *Handle) error
}
