package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID string, role domain.Role) {
	c.Set("user_id", userID)
	c.Set("role", string(role))
}

func expectHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError %d, got %v", code, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, he.Code, he.Message)
	}
}

// --- stubs ---

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context) error
	sessionFn  func(ctx context.Context) (*domain.User, error)
	meFn       func(ctx context.Context, userID string) (*domain.User, error)
	approveFn  func(ctx context.Context, professorID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAuthService) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.sessionFn(ctx)
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) ApproveProfessor(ctx context.Context, professorID string) (*domain.User, error) {
	return s.approveFn(ctx, professorID)
}

type stubLedger struct {
	subscribeFn func(ctx context.Context, in ports.SubscribeInput) (*ports.WalletResult, error)
	rechargeFn  func(ctx context.Context, studentID string) (*ports.WalletResult, error)
	walletFn    func(ctx context.Context, studentID string) (*ports.WalletResult, error)
}

func (s *stubLedger) Subscribe(ctx context.Context, in ports.SubscribeInput) (*ports.WalletResult, error) {
	return s.subscribeFn(ctx, in)
}

func (s *stubLedger) Recharge(ctx context.Context, studentID string) (*ports.WalletResult, error) {
	return s.rechargeFn(ctx, studentID)
}

func (s *stubLedger) Wallet(ctx context.Context, studentID string) (*ports.WalletResult, error) {
	return s.walletFn(ctx, studentID)
}

type stubCatalog struct {
	channels  []domain.Channel
	ads       []domain.Announcement
	createFn  func(ctx context.Context, in ports.CreateChannelInput) (*domain.Channel, error)
	publishFn func(ctx context.Context, in ports.PublishAnnouncementInput) (*domain.Announcement, error)
	standing  func(ctx context.Context, professorID string) (*domain.Standing, error)
}

func (s *stubCatalog) CreateChannel(ctx context.Context, in ports.CreateChannelInput) (*domain.Channel, error) {
	return s.createFn(ctx, in)
}

func (s *stubCatalog) ListChannels(context.Context) ([]domain.Channel, error) { return s.channels, nil }

func (s *stubCatalog) GetChannel(_ context.Context, id string) (*domain.Channel, error) {
	for i := range s.channels {
		if s.channels[i].ID == id {
			return &s.channels[i], nil
		}
	}
	return nil, domain.ErrChannelNotFound
}

func (s *stubCatalog) PublishAnnouncement(ctx context.Context, in ports.PublishAnnouncementInput) (*domain.Announcement, error) {
	return s.publishFn(ctx, in)
}

func (s *stubCatalog) ListAnnouncements(context.Context) ([]domain.Announcement, error) {
	return s.ads, nil
}

func (s *stubCatalog) Standing(ctx context.Context, professorID string) (*domain.Standing, error) {
	return s.standing(ctx, professorID)
}
