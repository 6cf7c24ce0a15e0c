package worker

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"modelo/internal/domain/listing"
	"modelo/internal/domain/notification"
)

const (
	listingGracePeriod    = 24 * time.Hour
	notificationRetention = 90 * 24 * time.Hour
	jobTimeout            = 2 * time.Minute
)

// Worker runs periodic maintenance jobs: completing stale listings and
// pruning old read notifications.
type Worker struct {
	cron     *cron.Cron
	listings *listing.Service
	notifs   *notification.Service
}

func New(listings *listing.Service, notifs *notification.Service) *Worker {
	return &Worker{
		cron:     cron.New(),
		listings: listings,
		notifs:   notifs,
	}
}

// Start registers the jobs and launches the scheduler.
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc("@hourly", w.sweepListings); err != nil {
		return err
	}
	if _, err := w.cron.AddFunc("@daily", w.cleanupNotifications); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (w *Worker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *Worker) sweepListings() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := w.listings.CompleteExpired(ctx, listingGracePeriod)
	if err != nil {
		log.Printf("worker: listing sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("worker: auto-completed %d expired listings", n)
	}
}

func (w *Worker) cleanupNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := w.notifs.CleanupRead(ctx, notificationRetention)
	if err != nil {
		log.Printf("worker: notification cleanup failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("worker: pruned %d read notifications", n)
	}
}
