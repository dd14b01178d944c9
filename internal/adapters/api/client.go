package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource yields the bearer token of the current browser
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Client is the single entry point to the VetCare REST backend.
// It never changes session state; callers interpret its results.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Entry
}

// NewHTTPClient returns an HTTP client with tracing on its transport
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewClient creates a client for backend host base; paths are sent under <base>/api
func NewClient(base string, httpClient *http.Client, tokens TokenSource, log *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/") + "/api",
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// Request sends one call to the backend. body, when non-nil, is sent as JSON;
// out, when non-nil, receives the decoded JSON answer.
func (c *Client) Request(ctx context.Context, endpoint, method string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.
			WithLabelValues(method, metrics.Resource(endpoint), outcome(err)).
			Observe(time.Since(start).Seconds())
		if err != nil {
			c.log.WithError(err).WithFields(logrus.Fields{
				"method":   method,
				"endpoint": endpoint,
			}).Warn("backend request failed")
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewValidationError("Dados inválidos: " + err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, ok := c.bearer(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return domain.NewRejectedError(resp.StatusCode, eb.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.Error{Kind: domain.KindNetwork, Status: resp.StatusCode, Message: domain.MsgInvalidResponse, Err: err}
	}
	return nil
}

// bearer returns the token only when it is usable in a header
func (c *Client) bearer(ctx context.Context) (string, bool) {
	if c.tokens == nil {
		return "", false
	}
	token, ok := c.tokens.Token(ctx)
	if !ok || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}
	return token, true
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var e *domain.Error
	if errors.As(err, &e) {
		return e.Kind.String()
	}
	return "error"
}
