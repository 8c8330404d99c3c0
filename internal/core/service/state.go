package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// StateHolder owns the live application state. Every change goes through
// Mutate, one at a time, and replaces the state wholesale.
type StateHolder struct {
	mu    sync.Mutex
	state *domain.State
	saver ports.StateSaver
	log   zerolog.Logger
}

func NewStateHolder(initial *domain.State, saver ports.StateSaver, log zerolog.Logger) *StateHolder {
	if initial == nil {
		initial = &domain.State{Theme: domain.ThemeLight}
	}
	return &StateHolder{state: initial, saver: saver, log: log}
}

// View returns the current state. Callers must treat it as read-only.
func (h *StateHolder) View() *domain.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Mutate runs fn against a private copy of the state. When fn succeeds the
// copy becomes the live state and is mirrored to storage; when it fails the
// live state is left as it was. A failed save is logged and the in-memory
// state is kept.
func (h *StateHolder) Mutate(ctx context.Context, fn func(next *domain.State) error) (*domain.State, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.state.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	h.state = next

	if h.saver != nil {
		if err := h.saver.Save(ctx, next); err != nil {
			h.log.Warn().Err(err).Msg("state save failed, keeping in-memory state")
		}
	}
	return next, nil
}
