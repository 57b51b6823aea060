package notification

import (
	"context"
	"log"
	"time"
)

// ExpiryWorker runs the daily expiry sweep. It is constructed once at
// application start and stopped explicitly on shutdown.
type ExpiryWorker struct {
	service  NotificationService
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewExpiryWorker(service NotificationService, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ExpiryWorker{
		service:  service,
		interval: interval,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := w.service.NotifyExpiringItems(ctx); err != nil {
					log.Printf("Error running expiry sweep: %v", err)
				}
			}
		}
	}()
}

func (w *ExpiryWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}
