// Package snapshot mirrors the application state into a key/value store
// using one JSON document per key.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/api/metrics"
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

type sessionDoc struct {
	UserID string `json:"userId"`
}

// Store implements ports.StateStore on top of a ports.KeyValueStore.
type Store struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

func NewStore(kv ports.KeyValueStore, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load reads every key. Absent keys fall back to the demo seed; unreadable
// keys are logged and fall back the same way, so a broken store never blocks
// startup. Load itself never writes.
func (s *Store) Load(ctx context.Context) (*domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := &domain.State{Theme: domain.ThemeLight}
	st.Snapshot.Users = loadKey(ctx, s, ports.KeyUsers, domain.SeedUsers)
	st.Snapshot.Channels = loadKey(ctx, s, ports.KeyChannels, domain.SeedChannels)
	st.Announcements = loadKey(ctx, s, ports.KeyAnnouncements, domain.SeedAnnouncements)

	session := loadKey(ctx, s, ports.KeySession, func() sessionDoc { return sessionDoc{} })
	st.SessionUserID = session.UserID

	theme := loadKey(ctx, s, ports.KeyTheme, func() domain.Theme { return domain.ThemeLight })
	if theme.Valid() {
		st.Theme = theme
	}

	return st, nil
}

func loadKey[T any](ctx context.Context, s *Store, key string, fallback func() T) T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("load").Inc()
		s.log.Warn().Err(err).Str("key", key).Msg("storage read failed, using defaults")
		return fallback()
	}
	if !ok {
		return fallback()
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("load").Inc()
		s.log.Warn().Err(err).Str("key", key).Msg("stored value unreadable, using defaults")
		return fallback()
	}
	return v
}

// Save writes every key. Empty lists are stored as [] rather than null.
func (s *Store) Save(ctx context.Context, st *domain.State) error {
	if st == nil {
		return fmt.Errorf("save: nil state: %w", domain.ErrInvalidArgument)
	}

	docs := []struct {
		key   string
		value any
	}{
		{ports.KeyUsers, nonNil(st.Snapshot.Users)},
		{ports.KeyChannels, nonNil(st.Snapshot.Channels)},
		{ports.KeyAnnouncements, nonNil(st.Announcements)},
		{ports.KeySession, sessionDoc{UserID: st.SessionUserID}},
		{ports.KeyTheme, st.Theme},
	}

	var errs []error
	for _, d := range docs {
		if err := s.put(ctx, d.key, d.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) CurrentSession(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, ports.KeySession)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("session").Inc()
		return "", false, fmt.Errorf("%w: read session: %v", domain.ErrStorage, err)
	}
	if !ok {
		return "", false, nil
	}
	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", false, fmt.Errorf("%w: decode session: %v", domain.ErrStorage, err)
	}
	return doc.UserID, doc.UserID != "", nil
}

func (s *Store) SetSession(ctx context.Context, userID string) error {
	return s.put(ctx, ports.KeySession, sessionDoc{UserID: userID})
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
