package arena

import (
	"context"

	"iqarena/internal/session"
)

// Handle is the session-reporting surface handed to a mini-game. It
// delegates timing control to the underlying session and routes the
// single End call through the result processor.
type Handle struct {
	ctrl   *Controller
	sess   *session.Session
	mode   string
	update *Update
}

func (h *Handle) SessionID() string   { return h.sess.ID() }
func (h *Handle) GameID() string      { return h.sess.GameID() }
func (h *Handle) Start() error        { return h.sess.Start() }
func (h *Handle) Pause() error        { return h.sess.Pause() }
func (h *Handle) Resume() error       { return h.sess.Resume() }
func (h *Handle) ElapsedSeconds() int { return h.sess.ElapsedSeconds() }

// End concludes the play-through and processes its result exactly
// once. Calling it again is a caller error: the session rejects the
// transition and no second result is recorded.
func (h *Handle) End(ctx context.Context, won bool, score int) (*Update, error) {
	res, err := h.sess.End(won, score)
	if err != nil {
		h.ctrl.logger.Warn("session.end_rejected", map[string]any{
			"session": h.sess.ID(),
			"game":    h.sess.GameID(),
			"error":   err.Error(),
		})
		return nil, err
	}
	update, err := h.ctrl.processor.Process(ctx, res, h.mode)
	if err != nil {
		return nil, err
	}
	h.update = update
	h.ctrl.setProgress(update.Progress)
	return update, nil
}

// Update returns the result of the End call, or nil while the session
// is still live.
func (h *Handle) Update() *Update { return h.update }
