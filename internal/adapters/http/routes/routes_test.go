package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vetcare-web/internal/adapters/browser"
	"vetcare-web/internal/adapters/http/handlers"
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/adapters/persistence/repositories"
	"vetcare-web/internal/adapters/persistence/store"
	"vetcare-web/internal/config"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/core/services"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const cookieName = "vetcare_sid"

// fakeBackend is a minimal VetCare REST backend
type fakeBackend struct {
	logins      atomic.Int32
	verifyGate  chan struct{}
	releaseOnce sync.Once
}

func (b *fakeBackend) release() {
	b.releaseOnce.Do(func() {
		if b.verifyGate != nil {
			close(b.verifyGate)
		}
	})
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorized := strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/auth/login" && r.Method == http.MethodPost:
		b.logins.Add(1)
		var creds domain.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Senha != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Credenciais inválidas"}`)
			return
		}
		if creds.Tipo == domain.UserTypeClinica {
			_, _ = io.WriteString(w, `{"token":"tok-clinica","user":{"type":"clinica","nome_clinica":"Pet Vida","email":"c@x.com"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"token":"tok-tutor","user":{"type":"tutor","nome":"Ana","email":"ana@x.com"}}`)

	case r.URL.Path == "/api/auth/verify":
		if b.verifyGate != nil {
			<-b.verifyGate
		}
		_, _ = io.WriteString(w, `{"valid":true,"user":{"type":"tutor","nome":"Ana","email":"ana@x.com"}}`)

	case r.URL.Path == "/api/auth/logout":
		_, _ = io.WriteString(w, `{"message":"ok"}`)

	case !authorized:
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Token não fornecido"}`)

	case r.URL.Path == "/api/animals/":
		_, _ = io.WriteString(w, `{"animals":[{"id":"1","nome":"Rex","especie":"Cão","castrado":true}]}`)

	case r.URL.Path == "/api/appointments/":
		_, _ = io.WriteString(w, `{"appointments":[{"id":"a1","animal_id":"1","data_agendamento":"2026-11-02","horario":"10:00","status":"pendente"}]}`)

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Rota não encontrada"}`)
	}
}

type harness struct {
	t        *testing.T
	app      *fiber.App
	repo     *repositories.MemoryStorageRepository
	registry *services.BrowserRegistry
	backend  *fakeBackend
	log      *logrus.Logger
}

func newHarness(t *testing.T, backend *fakeBackend, wait time.Duration) *harness {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	t.Cleanup(backend.release)

	cfg := &config.Config{
		AppMode: "dev",
		Store:   config.StoreConfig{Driver: config.StoreMemory},
		Session: config.SessionConfig{CookieName: cookieName, Idle: time.Hour, StartupWait: wait},
		Cookie:  config.CookieConfig{SameSite: "lax"},
	}

	repo := repositories.NewMemoryStorageRepository()
	registry := services.NewBrowserRegistry(context.Background(), browser.NewFactory(browser.Options{
		Repo:       repo,
		APIBaseURL: srv.URL,
		HTTPClient: srv.Client(),
		Log:        log,
	}), logrus.NewEntry(log))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.NewErrorHandler(logrus.NewEntry(log))})
	Setup(app, Dependencies{
		Config:   cfg,
		Registry: registry,
		Checks: map[string]handlers.HealthCheck{
			"store": func(context.Context) error { return nil },
		},
		Log: log,
	})

	return &harness{t: t, app: app, repo: repo, registry: registry, backend: backend, log: log}
}

// do sends a request as the browser holding sid ("" for a new browser)
// and returns the response, its decoded envelope and the browser's sid.
func (h *harness) do(method, path, body, sid string) (*http.Response, response.Response, string) {
	h.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	}

	resp, err := h.app.Test(req, -1)
	if err != nil {
		h.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			sid = c.Value
		}
	}

	var env response.Response
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &env); err != nil {
			h.t.Fatalf("decode %s %s: %v (%s)", method, path, err, raw)
		}
	}
	return resp, env, sid
}

func (h *harness) login(role domain.UserType) string {
	h.t.Helper()
	_, _, sid := h.do(http.MethodGet, "/", "", "")
	resp, env, sid := h.do(http.MethodPost, "/login", `{"email":"ana@x.com","senha":"secret1","tipo":"`+string(role)+`"}`, sid)
	if resp.StatusCode != http.StatusOK || env.Redirect != domain.HomeFor(role) {
		h.t.Fatalf("login as %s: status %d, envelope %+v", role, resp.StatusCode, env)
	}
	return sid
}

func TestAnonymousDashboardRedirectsToLogin(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)

	resp, _, sid := h.do(http.MethodGet, "/dashboard/tutor/animais", "", "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?from=%2Fdashboard%2Ftutor%2Fanimais" {
		t.Fatalf("location = %q", loc)
	}
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("expected a session cookie, got %q", sid)
	}
}

func TestLoginAndRoleRedirects(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)
	sid := h.login(domain.UserTypeTutor)

	resp, env, _ := h.do(http.MethodGet, "/dashboard/tutor", "", sid)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("tutor dashboard: status %d, %+v", resp.StatusCode, env)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store, private" {
		t.Fatalf("Cache-Control = %q", cc)
	}

	resp, _, _ = h.do(http.MethodGet, "/dashboard/clinica/agendamentos", "", sid)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != domain.TutorHome {
		t.Fatalf("tutor on clinic page: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp, _, _ = h.do(http.MethodGet, "/login", "", sid)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != domain.TutorHome {
		t.Fatalf("logged-in user on login page: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	token, ok, _ := h.repo.Get(context.Background(), sid+":"+store.TokenKey)
	if !ok || token != "tok-tutor" {
		t.Fatalf("stored token = %q (present %v)", token, ok)
	}
}

func TestLoginReturnsToRequestedPage(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)
	_, _, sid := h.do(http.MethodGet, "/", "", "")

	resp, env, _ := h.do(http.MethodPost, "/login?from=%2Fdashboard%2Fclinica%2Fanimais",
		`{"email":"c@x.com","senha":"secret1","tipo":"clinica"}`, sid)
	if resp.StatusCode != http.StatusOK || env.Redirect != "/dashboard/clinica/animais" {
		t.Fatalf("status %d redirect %q", resp.StatusCode, env.Redirect)
	}
}

func TestFailedLoginAnswersInline(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)
	_, _, sid := h.do(http.MethodGet, "/", "", "")

	resp, env, _ := h.do(http.MethodPost, "/login", `{"email":"ana@x.com","senha":"wrong1","tipo":"tutor"}`, sid)
	if resp.StatusCode != http.StatusUnauthorized || env.Error != "Credenciais inválidas" || env.Redirect != "" {
		t.Fatalf("status %d, envelope %+v", resp.StatusCode, env)
	}
	if h.repo.Len() != 0 {
		t.Fatal("failed login must not store anything")
	}

	resp, _, _ = h.do(http.MethodGet, "/dashboard/tutor", "", sid)
	if resp.StatusCode != http.StatusFound {
		t.Fatal("failed login must leave the browser anonymous")
	}
}

func TestLoginValidationSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	h := newHarness(t, backend, time.Second)

	resp, env, _ := h.do(http.MethodPost, "/login", `{"email":"not-an-email","senha":"secret1","tipo":"tutor"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != domain.MsgInvalidEmail {
		t.Fatalf("status %d, envelope %+v", resp.StatusCode, env)
	}
	if backend.logins.Load() != 0 {
		t.Fatal("validation failure reached the backend")
	}
}

func TestRegisterMismatchedPasswords(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)

	resp, env, _ := h.do(http.MethodPost, "/cadastro/tutor",
		`{"nome":"Ana","email":"ana@x.com","senha":"secret1","confirmar_senha":"secret2","telefone":"11987654321"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != domain.MsgPasswordMismatch {
		t.Fatalf("status %d, envelope %+v", resp.StatusCode, env)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)
	sid := h.login(domain.UserTypeClinica)

	resp, env, _ := h.do(http.MethodPost, "/logout", "", sid)
	if resp.StatusCode != http.StatusOK || env.Redirect != "/" {
		t.Fatalf("logout: status %d, %+v", resp.StatusCode, env)
	}
	if h.repo.Len() != 0 {
		t.Fatal("store must be empty after logout")
	}

	resp, _, _ = h.do(http.MethodGet, "/dashboard/clinica", "", sid)
	if resp.StatusCode != http.StatusFound || !strings.HasPrefix(resp.Header.Get("Location"), "/login") {
		t.Fatalf("after logout: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestGuardAnswers503WhileRestoring(t *testing.T) {
	backend := &fakeBackend{verifyGate: make(chan struct{})}
	h := newHarness(t, backend, 50*time.Millisecond)

	sid := uuid.NewString()
	seeded := store.New(h.repo, sid, nil, logrus.NewEntry(h.log))
	if err := seeded.SaveToken(context.Background(), "opaque-token"); err != nil {
		t.Fatal(err)
	}
	if err := seeded.SaveUser(context.Background(), &domain.Tutor{Nome: "Ana"}); err != nil {
		t.Fatal(err)
	}

	resp, env, _ := h.do(http.MethodGet, "/dashboard/tutor/configuracoes", "", sid)
	if resp.StatusCode != http.StatusServiceUnavailable || !env.Loading {
		t.Fatalf("status %d, envelope %+v", resp.StatusCode, env)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Fatal("missing Retry-After")
	}

	backend.release()
	select {
	case <-h.registry.Get(sid).Session.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("session never became ready")
	}

	resp, _, _ = h.do(http.MethodGet, "/dashboard/tutor/configuracoes", "", sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("after restore: status %d", resp.StatusCode)
	}
}

func TestPublicPagesAndNotFound(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)

	for _, path := range []string{"/", "/sobre", "/servicos", "/contato"} {
		resp, env, _ := h.do(http.MethodGet, path, "", "")
		if resp.StatusCode != http.StatusOK || !env.Success {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
	}

	resp, env, _ := h.do(http.MethodGet, "/nao-existe", "", "")
	if resp.StatusCode != http.StatusNotFound || env.Error != middleware.NotFoundMessage {
		t.Fatalf("status %d, envelope %+v", resp.StatusCode, env)
	}
}

func TestHealthSkipsBrowserSession(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, time.Second)

	resp, _, sid := h.do(http.MethodGet, "/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status %d", resp.StatusCode)
	}
	if sid != "" || h.registry.Len() != 0 {
		t.Fatal("probes must not create browser sessions")
	}
}
