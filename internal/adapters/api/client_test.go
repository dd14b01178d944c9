package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetcare-web/internal/core/domain"

	"github.com/sirupsen/logrus"
)

type staticTokens string

func (s staticTokens) Token(context.Context) (string, bool) {
	return string(s), s != ""
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), staticTokens(token), quietLog())
}

func TestRequestAttachesBearerAndBody(t *testing.T) {
	var gotAuth, gotPath, gotType string
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":"yes"}`))
	}, "t1")

	var out map[string]string
	err := client.Request(context.Background(), "/auth/login", http.MethodPost, map[string]string{"email": "ana@x.com"}, &out)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/api/auth/login" {
		t.Fatalf("expected /api prefix, got %q", gotPath)
	}
	if gotType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotType)
	}
	if gotBody["email"] != "ana@x.com" {
		t.Fatalf("body not serialized: %v", gotBody)
	}
	if out["ok"] != "yes" {
		t.Fatalf("response not decoded: %v", out)
	}
}

func TestRequestOmitsBearerWithoutUsableToken(t *testing.T) {
	for _, token := range []string{"", "has space", "line\nbreak"} {
		var hasAuth bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, hasAuth = r.Header["Authorization"]
			_, _ = w.Write([]byte(`{}`))
		}, token)

		if err := client.Request(context.Background(), "/auth/verify", http.MethodGet, nil, nil); err != nil {
			t.Fatalf("request: %v", err)
		}
		if hasAuth {
			t.Fatalf("authorization header must not be sent for token %q", token)
		}
	}
}

func TestRequestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"backend message", http.StatusUnauthorized, `{"error":"Credenciais inválidas"}`, "Credenciais inválidas"},
		{"no error field", http.StatusInternalServerError, `{"message":"boom"}`, "Erro 500"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "Erro 502"},
		{"empty body", http.StatusNotFound, ``, "Erro 404"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			err := client.Request(context.Background(), "/x", http.MethodGet, nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, err.Error())
			}
			var e *domain.Error
			if !asError(err, &e) || e.Kind != domain.KindAuthRejected || e.Status != tt.status {
				t.Fatalf("unexpected error value %#v", err)
			}
		})
	}
}

func TestRequestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := NewClient(base, nil, nil, quietLog())
	err := client.Request(context.Background(), "/auth/verify", http.MethodGet, nil, nil)
	if err == nil {
		t.Fatal("expected network error")
	}
	if domain.KindOf(err) != domain.KindNetwork {
		t.Fatalf("expected network kind, got %v", domain.KindOf(err))
	}
	if err.Error() == "" {
		t.Fatal("network error must carry the transport description")
	}
}

func TestRequestInvalidSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}, "")

	var out map[string]any
	err := client.Request(context.Background(), "/animals/", http.MethodGet, nil, &out)
	if domain.KindOf(err) != domain.KindNetwork || err.Error() != domain.MsgInvalidResponse {
		t.Fatalf("expected invalid response error, got %v", err)
	}
}
