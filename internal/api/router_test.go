package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
	"github.com/way-campus/way/internal/core/service"
	"github.com/way-campus/way/internal/infrastructure/db/memory"
	"github.com/way-campus/way/internal/infrastructure/db/snapshot"
)

const testSecret = "test-secret"

type fixedGateway struct{ answer string }

func (g fixedGateway) Complete(context.Context, string, string) (string, error) {
	return g.answer, nil
}

type testServer struct {
	e  *echo.Echo
	kv *memory.KVStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()
	kv := memory.NewKVStore()
	store := snapshot.NewStore(kv, log)

	initial, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	state := service.NewStateHolder(initial, store, log)
	catalog := service.NewCatalogService(state, log)

	e := echo.New()
	Register(e, Services{
		Auth:        service.NewAuthService(state, testSecret, time.Hour, log),
		Ledger:      service.NewLedgerService(state, nil, domain.DefaultRechargeAmount, log),
		Catalog:     catalog,
		Preferences: catalog,
		Assistant:   service.NewAssistantService(fixedGateway{answer: "Use a heap."}, time.Second, log),
	}, testSecret, log)
	return &testServer{e: e, kv: kv}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	rec := s.do(t, http.MethodPost, "/v1/auth/login", "", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login %s: no token in %s", email, rec.Body.String())
	}
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

type wallet struct {
	StudentID     string `json:"studentId"`
	WalletBalance int64  `json:"walletBalance"`
}

func TestRouter_SubscribeFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "student@way.edu", "")

	rec := s.do(t, http.MethodPost, "/v1/channels/"+domain.SeedChannelID+"/subscribe", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("subscribe: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if w := decode[wallet](t, rec); w.WalletBalance != 800 {
		t.Fatalf("expected balance 800, got %d", w.WalletBalance)
	}

	rec = s.do(t, http.MethodPost, "/v1/channels/"+domain.SeedChannelID+"/subscribe", token, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("second subscribe: expected 409, got %d", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/v1/wallet", token, "")
	if w := decode[wallet](t, rec); w.WalletBalance != 800 {
		t.Fatalf("second subscribe must not charge, balance %d", w.WalletBalance)
	}

	rec = s.do(t, http.MethodGet, "/v1/professors/"+domain.SeedProfessorID+"/standing", token, "")
	st := decode[map[string]any](t, rec)
	if st["studentCount"] != float64(1) || st["tier"] != "silver" || st["aura"] != "red" {
		t.Fatalf("unexpected standing: %v", st)
	}

	// The mutation is mirrored to storage.
	raw, ok, _ := s.kv.Get(context.Background(), ports.KeyUsers)
	if !ok || !strings.Contains(string(raw), `"walletBalance":800`) {
		t.Fatalf("users not persisted: %s", raw)
	}
	raw, _, _ = s.kv.Get(context.Background(), ports.KeySession)
	if string(raw) != `{"userId":"`+domain.SeedStudentID+`"}` {
		t.Fatalf("unexpected session document: %s", raw)
	}
}

func TestRouter_InsufficientFundsThenRecharge(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/auth/register", "",
		`{"firstName":"Sara","email":"sara@way.edu","password":"secret1","role":"student"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	token := s.login(t, "sara@way.edu", "secret1")

	rec = s.do(t, http.MethodPost, "/v1/channels/"+domain.SeedChannelID+"/subscribe", token, "")
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}

	rec = s.do(t, http.MethodPost, "/v1/wallet/recharge", token, "")
	if w := decode[wallet](t, rec); w.WalletBalance != domain.DefaultRechargeAmount {
		t.Fatalf("expected %d after recharge, got %d", domain.DefaultRechargeAmount, w.WalletBalance)
	}

	rec = s.do(t, http.MethodPost, "/v1/channels/"+domain.SeedChannelID+"/subscribe", token, "")
	if w := decode[wallet](t, rec); rec.Code != http.StatusOK || w.WalletBalance != domain.DefaultRechargeAmount-400 {
		t.Fatalf("subscribe after recharge: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ProfessorApproval(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/auth/register", "",
		`{"firstName":"Karim","email":"karim@way.edu","password":"secret1","role":"professor"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	profID := decode[struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}](t, rec).User.ID
	profToken := s.login(t, "karim@way.edu", "secret1")

	rec = s.do(t, http.MethodPost, "/v1/channels", profToken, `{"name":"Compilers","price":300}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("unapproved professor: expected 403, got %d", rec.Code)
	}

	studentToken := s.login(t, "student@way.edu", "")
	rec = s.do(t, http.MethodPost, "/v1/admin/professors/"+profID+"/approve", studentToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student approving: expected 403, got %d", rec.Code)
	}

	adminToken := s.login(t, "admin@way.edu", "")
	rec = s.do(t, http.MethodPost, "/v1/admin/professors/"+profID+"/approve", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPost, "/v1/channels", profToken, `{"name":"Compilers","price":300}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("approved professor: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodGet, "/v1/channels", studentToken, "")
	list := decode[struct {
		Channels []struct {
			Name string `json:"name"`
		} `json:"channels"`
	}](t, rec)
	if len(list.Channels) != 2 || list.Channels[1].Name != "Compilers" {
		t.Fatalf("unexpected channel list: %+v", list.Channels)
	}
}

func TestRouter_AuthRequired(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/v1/me", "/v1/channels", "/v1/wallet", "/v1/announcements"} {
		if rec := s.do(t, http.MethodGet, path, "", ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestRouter_SessionAndLogout(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(t, http.MethodGet, "/v1/auth/session", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("no session yet: expected 404, got %d", rec.Code)
	}

	token := s.login(t, "professor@way.edu", "")
	rec := s.do(t, http.MethodGet, "/v1/auth/session", "", "")
	if u := decode[map[string]any](t, rec); u["id"] != domain.SeedProfessorID {
		t.Fatalf("unexpected session user: %v", u)
	}

	if rec := s.do(t, http.MethodPost, "/v1/auth/logout", token, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodGet, "/v1/auth/session", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("after logout: expected 404, got %d", rec.Code)
	}
}

func TestRouter_AnnouncementsAndAssistant(t *testing.T) {
	s := newTestServer(t)
	prof := s.login(t, "professor@way.edu", "")

	rec := s.do(t, http.MethodPost, "/v1/announcements", prof, `{"title":"Quiz","content":"Friday 10:00","tag":"exam"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("publish: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodGet, "/v1/announcements", prof, "")
	list := decode[struct {
		Announcements []struct {
			Title string `json:"title"`
		} `json:"announcements"`
	}](t, rec)
	if len(list.Announcements) != 2 || list.Announcements[0].Title != "Quiz" {
		t.Fatalf("expected newest first, got %+v", list.Announcements)
	}

	rec = s.do(t, http.MethodPost, "/v1/assistant/ask", prof, `{"question":"How do I find the k smallest?"}`)
	if ans := decode[map[string]string](t, rec); ans["answer"] != "Use a heap." {
		t.Fatalf("unexpected answer: %v", ans)
	}
}

func TestRouter_Theme(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(t, http.MethodPut, "/v1/preferences/theme", "", `{"theme":"dark"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous set theme: expected 401, got %d", rec.Code)
	}
	raw, _, _ := s.kv.Get(context.Background(), ports.KeyTheme)
	if string(raw) == `"dark"` {
		t.Fatal("anonymous request must not change the theme")
	}

	token := s.login(t, "student@way.edu", "")
	if rec := s.do(t, http.MethodPut, "/v1/preferences/theme", token, `{"theme":"dark"}`); rec.Code != http.StatusOK {
		t.Fatalf("set theme: expected 200, got %d", rec.Code)
	}
	raw, _, _ = s.kv.Get(context.Background(), ports.KeyTheme)
	if string(raw) != `"dark"` {
		t.Fatalf("theme not persisted: %s", raw)
	}
}
