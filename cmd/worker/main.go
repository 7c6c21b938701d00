package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/happyfares/config"
	"github.com/Domenick1991/happyfares/internal/cache"
	"github.com/Domenick1991/happyfares/internal/email"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"github.com/Domenick1991/happyfares/internal/repository"
	"github.com/Domenick1991/happyfares/internal/service/admin"
	"github.com/Domenick1991/happyfares/internal/service/booking"
	"github.com/Domenick1991/happyfares/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second,
		time.Duration(cfg.Admin.StatsCacheTTL)*time.Second,
	)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.SubmitLockSeconds)*time.Second,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
	)
	adminService := admin.NewAdminService(admin.Deps{
		Bookings:  bookingRepo,
		Enquiries: repository.NewEnquiryRepository(pool),
		Users:     repository.NewUserRepository(pool),
		Logs:      repository.NewAdminLogRepository(pool),
		Stats:     repository.NewStatsRepository(pool),
		Booking:   bookingService,
		Cache:     redisCache,
	}, cfg.Admin.PageLimit, cfg.Admin.MaxPageLimit)

	scheduler := worker.NewScheduler(bookingService, adminService)
	if err := scheduler.Register(cfg.Worker.ExpireSchedule, cfg.Worker.StatsSchedule); err != nil {
		log.Fatalf("register jobs: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if len(cfg.Kafka.Brokers) > 0 {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
		defer consumer.Close()

		sender := email.NewSender(cfg.SMTP)
		go func() {
			handler := kafka.BookingEventHandler(worker.NotificationHandler(sender))
			if err := consumer.Consume(ctx, handler); err != nil && ctx.Err() == nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	} else {
		log.Printf("WARNING: no kafka brokers configured, booking notifications are disabled")
	}

	<-ctx.Done()
	log.Printf("shutting down worker")
}
