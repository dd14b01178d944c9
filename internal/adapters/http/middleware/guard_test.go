package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vetcare-web/internal/config"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// noSession is an empty store; anonymous browsers never reach the gateway
type noSession struct{}

func (noSession) SaveToken(context.Context, string) error        { return nil }
func (noSession) Token(context.Context) (string, bool)           { return "", false }
func (noSession) SaveUser(context.Context, domain.Profile) error { return nil }
func (noSession) User(context.Context) (domain.Profile, bool)    { return nil, false }
func (noSession) Clear(context.Context) error                    { return nil }

func testApp(t *testing.T) (*fiber.App, *services.BrowserRegistry) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logrus.NewEntry(l)

	registry := services.NewBrowserRegistry(context.Background(), func(id string) *services.Browser {
		return &services.Browser{ID: id, Session: services.NewSessionService(noSession{}, nil, log)}
	}, log)

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: "sid", Idle: time.Hour},
		Cookie:  config.CookieConfig{SameSite: "lax"},
	}

	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(log)})
	app.Use(BrowserSession(registry, cfg), NoStore())
	app.Get("/painel", Guard(services.Authenticated(), time.Second), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Use(NotFound)
	return app, registry
}

func TestRedirectLocation(t *testing.T) {
	tests := []struct {
		decision services.Decision
		want     string
	}{
		{services.Decision{Action: services.ActionRedirect, Location: domain.TutorHome}, domain.TutorHome},
		{services.Decision{Action: services.ActionRedirect, Location: services.LoginPath, From: "/dashboard/tutor?tab=2"}, "/login?from=%2Fdashboard%2Ftutor%3Ftab%3D2"},
	}
	for _, tt := range tests {
		if got := RedirectLocation(tt.decision); got != tt.want {
			t.Errorf("RedirectLocation(%+v) = %q, want %q", tt.decision, got, tt.want)
		}
	}
}

func TestBrowserSessionIssuesAndReusesCookie(t *testing.T) {
	app, registry := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/painel", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c
		}
	}
	if sid == nil || !sid.HttpOnly {
		t.Fatalf("expected an HttpOnly session cookie, got %+v", sid)
	}
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login?from=%2Fpainel" {
		t.Fatalf("status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/painel", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid.Value})
	if _, err := app.Test(req, -1); err != nil {
		t.Fatal(err)
	}
	if registry.Len() != 1 {
		t.Fatalf("expected the cookie to be reused, have %d browsers", registry.Len())
	}
}

func TestBrowserSessionReplacesMalformedCookie(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/nada", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc"})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "sid" && c.Value == "../../etc" {
			t.Fatal("malformed id must be replaced")
		}
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if resp.Header.Get("Cache-Control") != "no-store, private" {
		t.Fatal("missing no-store header")
	}
}
