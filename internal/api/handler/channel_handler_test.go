package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

func TestChannelHandler_List_EmptySubscribersAsArray(t *testing.T) {
	catalog := &stubCatalog{channels: []domain.Channel{{ID: "c1", Name: "Algorithms I", Price: 400}}}
	c, rec := newTestContext(http.MethodGet, "/v1/channels", "")

	if err := NewChannelHandler(catalog, &stubLedger{}).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	chans := resp["channels"]
	if len(chans) != 1 {
		t.Fatalf("expected one channel, got %d", len(chans))
	}
	if subs, ok := chans[0]["subscribers"].([]any); !ok || len(subs) != 0 {
		t.Fatalf("subscribers should be an empty array, got %#v", chans[0]["subscribers"])
	}
}

func TestChannelHandler_Get_NotFound(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/v1/channels/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := NewChannelHandler(&stubCatalog{}, &stubLedger{}).Get(c)
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestChannelHandler_Create_UsesCaller(t *testing.T) {
	catalog := &stubCatalog{
		createFn: func(ctx context.Context, in ports.CreateChannelInput) (*domain.Channel, error) {
			if in.ProfessorID != "p1" || in.Name != "Databases" || in.Price != 250 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Channel{ID: "c9", ProfessorID: in.ProfessorID, Name: in.Name, Price: in.Price}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/v1/channels", `{"name":"Databases","price":250}`)
	authenticate(c, "p1", domain.RoleProfessor)

	if err := NewChannelHandler(catalog, &stubLedger{}).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestChannelHandler_Create_NegativePrice(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/v1/channels", `{"name":"Databases","price":-1}`)
	authenticate(c, "p1", domain.RoleProfessor)

	err := NewChannelHandler(&stubCatalog{}, &stubLedger{}).Create(c)
	expectHTTPError(t, err, http.StatusUnprocessableEntity)
}

func TestChannelHandler_Subscribe_PassesIdempotencyKey(t *testing.T) {
	ledger := &stubLedger{
		subscribeFn: func(ctx context.Context, in ports.SubscribeInput) (*ports.WalletResult, error) {
			if in.StudentID != "s1" || in.ChannelID != "c1" || in.IdempotencyKey != "k-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.WalletResult{StudentID: "s1", WalletBalance: 800, ChannelID: "c1"}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/v1/channels/c1/subscribe", "")
	c.Request().Header.Set("Idempotency-Key", " k-1 ")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	authenticate(c, "s1", domain.RoleStudent)

	if err := NewChannelHandler(&stubCatalog{}, ledger).Subscribe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp walletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.WalletBalance != 800 || resp.ChannelID != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChannelHandler_Subscribe_Rejections(t *testing.T) {
	for _, want := range []error{domain.ErrInsufficientFunds, domain.ErrAlreadySubscribed} {
		ledger := &stubLedger{
			subscribeFn: func(ctx context.Context, in ports.SubscribeInput) (*ports.WalletResult, error) {
				return nil, want
			},
		}
		c, _ := newTestContext(http.MethodPost, "/v1/channels/c1/subscribe", "")
		authenticate(c, "s1", domain.RoleStudent)

		if err := NewChannelHandler(&stubCatalog{}, ledger).Subscribe(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestChannelHandler_Subscribe_StudentsOnly(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/v1/channels/c1/subscribe", "")
	authenticate(c, "p1", domain.RoleProfessor)

	err := NewChannelHandler(&stubCatalog{}, &stubLedger{}).Subscribe(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
