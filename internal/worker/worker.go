// Package worker runs the background side of the booking flow: scheduled
// maintenance jobs and booking event notifications.
package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

type Expirer interface {
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type StatsRefresher interface {
	RefreshStats(ctx context.Context) (*domain.AdminStats, error)
}

type Notifier interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

type Scheduler struct {
	cron    *cron.Cron
	expirer Expirer
	stats   StatsRefresher
}

func NewScheduler(expirer Expirer, stats StatsRefresher) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	return &Scheduler{cron: c, expirer: expirer, stats: stats}
}

// Register schedules the jobs. Specs use the standard cron syntax or
// descriptors such as "@every 5m". An empty expireSpec skips the expire job.
func (s *Scheduler) Register(expireSpec, statsSpec string) error {
	if expireSpec != "" {
		if _, err := s.cron.AddFunc(expireSpec, func() { s.ExpireBookings(context.Background()) }); err != nil {
			return fmt.Errorf("schedule expire job %q: %w", expireSpec, err)
		}
	}
	if s.stats != nil {
		if _, err := s.cron.AddFunc(statsSpec, func() { s.RefreshStats(context.Background()) }); err != nil {
			return fmt.Errorf("schedule stats job %q: %w", statsSpec, err)
		}
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[WORKER CRON] scheduler started with %d jobs", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) ExpireBookings(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	expired, err := s.expirer.ExpirePendingBookings(ctx)
	if err != nil {
		log.Printf("[WORKER CRON] expire bookings: %v", err)
		return 0
	}
	if len(expired) > 0 {
		log.Printf("[WORKER CRON] expired %d bookings", len(expired))
	}
	return len(expired)
}

func (s *Scheduler) RefreshStats(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	if _, err := s.stats.RefreshStats(ctx); err != nil {
		log.Printf("[WORKER CRON] refresh stats: %v", err)
		return false
	}
	return true
}

// NotificationHandler emails the customer for each booking event. Delivery
// failures are logged and the event is acknowledged anyway.
func NotificationHandler(n Notifier) func(context.Context, kafka.BookingEvent) error {
	return func(ctx context.Context, event kafka.BookingEvent) error {
		if err := n.Send(ctx, event); err != nil {
			log.Printf("notify %s for booking %s: %v", event.Type, event.Reference, err)
		}
		return nil
	}
}
