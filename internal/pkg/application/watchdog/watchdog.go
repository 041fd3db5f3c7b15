package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultInterval = 5 * time.Minute

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	alertService alerts.AlertService
	interval     time.Duration

	done chan struct{}
	once sync.Once
}

func New(svc alerts.AlertService, interval time.Duration) Watchdog {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &watchdogImpl{
		alertService: svc,
		interval:     interval,
		done:         make(chan struct{}),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.watch(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.once.Do(func() { close(w.done) })
}

// watch runs a sweep immediately and then on every tick until stopped. A
// sweep that overlaps a slow predecessor is harmless since alert
// deduplication happens in the store.
func (w *watchdogImpl) watch(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.done:
			log.Info("watchdog stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *watchdogImpl) sweep(ctx context.Context) {
	if err := w.alertService.CheckAllSensors(ctx); err != nil {
		logging.GetFromContext(ctx).Error("sensor sweep failed", "err", err.Error())
	}
}
