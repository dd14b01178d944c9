package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PurgeService periodically drops idle browsers from memory and, when the
// storage backend supports it, deletes their persisted sessions.
type PurgeService struct {
	registry *BrowserRegistry
	purger   StalePurger
	memIdle  time.Duration
	idle     time.Duration
	log      *logrus.Entry
	cron     *cron.Cron
	now      func() time.Time
}

// NewPurgeService creates the purge job. purger may be nil (e.g. Redis, which expires keys itself).
func NewPurgeService(registry *BrowserRegistry, purger StalePurger, memIdle, idle time.Duration, log *logrus.Entry) *PurgeService {
	return &PurgeService{
		registry: registry,
		purger:   purger,
		memIdle:  memIdle,
		idle:     idle,
		log:      log,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start schedules the job with a cron spec such as "@every 30m"
func (p *PurgeService) Start(spec string) error {
	if _, err := p.cron.AddFunc(spec, func() { p.RunOnce(context.Background()) }); err != nil {
		return err
	}
	p.cron.Start()
	p.log.WithField("schedule", spec).Info("session purge scheduled")
	return nil
}

// Stop waits for a running purge to finish
func (p *PurgeService) Stop() {
	<-p.cron.Stop().Done()
	p.log.Info("session purge stopped")
}

// RunOnce performs a single purge pass
func (p *PurgeService) RunOnce(ctx context.Context) {
	now := p.now()
	evicted := p.registry.Evict(now.Add(-p.memIdle))

	var deleted int64
	if p.purger != nil {
		n, err := p.purger.DeleteStale(ctx, now.Add(-p.idle))
		if err != nil {
			p.log.WithError(err).Error("purge stored sessions failed")
		}
		deleted = n
	}

	p.log.WithFields(logrus.Fields{
		"evicted": evicted,
		"deleted": deleted,
	}).Info("session purge finished")
}
