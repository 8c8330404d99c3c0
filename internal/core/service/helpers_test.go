package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubSaver struct {
	saves   int
	last    *domain.State
	saveErr error
}

func (s *stubSaver) Save(_ context.Context, st *domain.State) error {
	s.saves++
	s.last = st
	return s.saveErr
}

type stubDedup struct {
	seen    map[string]bool
	dupErr  error
	markErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	if d.dupErr != nil {
		return false, d.dupErr
	}
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[key] = true
	return nil
}

var errBoom = errors.New("boom")

// seededState returns a fresh copy of the demo seed.
func seededState() *domain.State {
	return &domain.State{
		Snapshot: domain.Snapshot{
			Users:    domain.SeedUsers(),
			Channels: domain.SeedChannels(),
		},
		Announcements: domain.SeedAnnouncements(),
		Theme:         domain.ThemeLight,
	}
}

func newHolder(saver *stubSaver) *StateHolder {
	return NewStateHolder(seededState(), saver, discardLogger)
}
