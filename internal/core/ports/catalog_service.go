package ports

import (
	"context"

	"github.com/way-campus/way/internal/core/domain"
)

// CreateChannelInput carries the new channel fields.
type CreateChannelInput struct {
	ProfessorID string
	Name        string
	Description string
	Price       int64
}

// PublishAnnouncementInput carries a new announcement.
type PublishAnnouncementInput struct {
	ProfessorID string
	Title       string
	Content     string
	Tag         string
}

// CatalogService manages channels, announcements and professor standing.
type CatalogService interface {
	CreateChannel(ctx context.Context, input CreateChannelInput) (*domain.Channel, error)
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetChannel(ctx context.Context, id string) (*domain.Channel, error)
	PublishAnnouncement(ctx context.Context, input PublishAnnouncementInput) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	Standing(ctx context.Context, professorID string) (*domain.Standing, error)
}

// PreferenceService reads and writes the theme preference.
type PreferenceService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}
