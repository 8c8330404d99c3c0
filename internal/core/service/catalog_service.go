package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

const defaultAnnouncementTag = "general"

type CatalogService struct {
	state *StateHolder
	log   zerolog.Logger
	now   func() time.Time
}

func NewCatalogService(state *StateHolder, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		state: state,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// publisher checks that id belongs to an approved professor.
func publisher(s domain.Snapshot, id string) (domain.User, error) {
	u, _, ok := s.FindUser(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	if u.Role != domain.RoleProfessor {
		return domain.User{}, domain.ErrForbidden
	}
	if !u.IsApproved {
		return domain.User{}, domain.ErrProfessorNotApproved
	}
	return u, nil
}

func (s *CatalogService) CreateChannel(ctx context.Context, in ports.CreateChannelInput) (*domain.Channel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("create channel: name required: %w", domain.ErrInvalidArgument)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("create channel: price %d: %w", in.Price, domain.ErrInvalidArgument)
	}

	ch := domain.Channel{
		ID:          uuid.NewString(),
		ProfessorID: in.ProfessorID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Subscribers: []string{},
		Content:     []domain.ContentItem{},
		CreatedAt:   s.now(),
	}

	_, err := s.state.Mutate(ctx, func(next *domain.State) error {
		if _, err := publisher(next.Snapshot, in.ProfessorID); err != nil {
			return err
		}
		next.Snapshot.Channels = append(next.Snapshot.Channels, ch)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("channel_id", ch.ID).Str("professor_id", in.ProfessorID).Int64("price", ch.Price).Msg("channel created")
	return &ch, nil
}

func (s *CatalogService) ListChannels(_ context.Context) ([]domain.Channel, error) {
	return s.state.View().Snapshot.Clone().Channels, nil
}

func (s *CatalogService) GetChannel(_ context.Context, id string) (*domain.Channel, error) {
	ch, _, ok := s.state.View().Snapshot.FindChannel(id)
	if !ok {
		return nil, domain.ErrChannelNotFound
	}
	ch.Subscribers = slices.Clone(ch.Subscribers)
	return &ch, nil
}

// PublishAnnouncement prepends a new announcement; the list is newest first.
func (s *CatalogService) PublishAnnouncement(ctx context.Context, in ports.PublishAnnouncementInput) (*domain.Announcement, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("publish announcement: title and content required: %w", domain.ErrInvalidArgument)
	}
	tag := strings.TrimSpace(in.Tag)
	if tag == "" {
		tag = defaultAnnouncementTag
	}

	var ad domain.Announcement
	_, err := s.state.Mutate(ctx, func(next *domain.State) error {
		prof, err := publisher(next.Snapshot, in.ProfessorID)
		if err != nil {
			return err
		}
		ad = domain.Announcement{
			ID:            uuid.NewString(),
			ProfessorID:   prof.ID,
			ProfessorName: prof.DisplayName(),
			Title:         title,
			Content:       content,
			Tag:           tag,
			CreatedAt:     s.now(),
		}
		next.Announcements = append([]domain.Announcement{ad}, next.Announcements...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("announcement_id", ad.ID).Str("professor_id", ad.ProfessorID).Msg("announcement published")
	return &ad, nil
}

func (s *CatalogService) ListAnnouncements(_ context.Context) ([]domain.Announcement, error) {
	return slices.Clone(s.state.View().Announcements), nil
}

// Standing returns the tier and aura of a professor.
func (s *CatalogService) Standing(_ context.Context, professorID string) (*domain.Standing, error) {
	u, _, ok := s.state.View().Snapshot.FindUser(professorID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if u.Role != domain.RoleProfessor {
		return nil, fmt.Errorf("standing of %q: not a professor: %w", professorID, domain.ErrInvalidArgument)
	}
	st, err := domain.StandingOf(u)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Theme returns the stored colour scheme.
func (s *CatalogService) Theme(_ context.Context) (domain.Theme, error) {
	return s.state.View().Theme, nil
}

func (s *CatalogService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("set theme %q: %w", theme, domain.ErrInvalidArgument)
	}
	_, err := s.state.Mutate(ctx, func(next *domain.State) error {
		next.Theme = theme
		return nil
	})
	return err
}
