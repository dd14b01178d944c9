package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"vetcare-web/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// Browser bundles everything scoped to one browser: its session and the
// backend APIs bound to that session's token.
type Browser struct {
	ID           string
	Session      *SessionService
	Auth         AuthGateway
	Animals      AnimalsGateway
	Appointments AppointmentsGateway
	Contact      ContactGateway

	lastSeen atomic.Int64
}

// Touch records that the browser was just used
func (b *Browser) Touch(now time.Time) {
	b.lastSeen.Store(now.UnixNano())
}

// LastSeen returns the last time the browser was used
func (b *Browser) LastSeen() time.Time {
	return time.Unix(0, b.lastSeen.Load())
}

// BrowserFactory builds the Browser for a new id
type BrowserFactory func(id string) *Browser

// BrowserRegistry holds one Browser per browser id, creating and starting
// sessions on first use.
type BrowserRegistry struct {
	ctx     context.Context
	factory BrowserFactory
	log     *logrus.Entry
	now     func() time.Time

	mu       sync.Mutex
	browsers map[string]*Browser
}

// NewBrowserRegistry creates a registry. ctx bounds the startup checks.
func NewBrowserRegistry(ctx context.Context, factory BrowserFactory, log *logrus.Entry) *BrowserRegistry {
	return &BrowserRegistry{
		ctx:      ctx,
		factory:  factory,
		log:      log,
		now:      time.Now,
		browsers: make(map[string]*Browser),
	}
}

// Get returns the browser for id. A browser seen for the first time gets its
// startup token check launched in the background.
func (r *BrowserRegistry) Get(id string) *Browser {
	r.mu.Lock()
	b, ok := r.browsers[id]
	if !ok {
		b = r.factory(id)
		r.browsers[id] = b
		metrics.ActiveBrowsers.Set(float64(len(r.browsers)))
	}
	r.mu.Unlock()

	b.Touch(r.now())
	if !ok {
		r.log.WithField("browser", id).Debug("new browser session")
		go b.Session.Start(r.ctx)
	}
	return b
}

// Evict drops browsers idle since before cutoff. Their stored sessions are
// kept and restored on the next request.
func (r *BrowserRegistry) Evict(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, b := range r.browsers {
		if b.LastSeen().Before(cutoff) {
			delete(r.browsers, id)
			n++
		}
	}
	metrics.ActiveBrowsers.Set(float64(len(r.browsers)))
	return n
}

// Len returns the number of browsers in memory
func (r *BrowserRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.browsers)
}
