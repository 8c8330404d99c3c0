package ports

import (
	"context"

	"github.com/way-campus/way/internal/core/domain"
)

// Storage keys. The layout matches what the browser client kept in
// localStorage so existing exports can be imported as-is.
const (
	KeyUsers         = "way_users"
	KeyChannels      = "way_channels"
	KeyAnnouncements = "way_ads"
	KeySession       = "way_session"
	KeyTheme         = "theme"
)

// KeyValueStore is the durable byte store the state is mirrored into.
type KeyValueStore interface {
	// Get returns ok=false when the key has never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// StateStore loads and saves the whole application state.
type StateStore interface {
	// Load reads every key, seeding defaults for absent ones.
	Load(ctx context.Context) (*domain.State, error)
	// Save writes every key. Last write wins.
	Save(ctx context.Context, state *domain.State) error
	CurrentSession(ctx context.Context) (userID string, ok bool, err error)
	// SetSession records the logged-in user; an empty id clears it.
	SetSession(ctx context.Context, userID string) error
}

// StateSaver is the subset of StateStore used after each mutation.
type StateSaver interface {
	Save(ctx context.Context, state *domain.State) error
}
