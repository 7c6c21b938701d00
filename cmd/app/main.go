package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/happyfares/api"
	"github.com/Domenick1991/happyfares/config"
	"github.com/Domenick1991/happyfares/internal/auth"
	"github.com/Domenick1991/happyfares/internal/bootstrap"
	"github.com/Domenick1991/happyfares/internal/cache"
	"github.com/Domenick1991/happyfares/internal/catalog"
	"github.com/Domenick1991/happyfares/internal/database"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"github.com/Domenick1991/happyfares/internal/repository"
	"github.com/Domenick1991/happyfares/internal/service/admin"
	"github.com/Domenick1991/happyfares/internal/service/booking"
	"github.com/Domenick1991/happyfares/internal/service/enquiry"
	"github.com/Domenick1991/happyfares/internal/service/flights"
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

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(cfg.Database.DSN(), cat); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

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
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("WARNING: redis unavailable: %v", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Printf("WARNING: kafka unavailable, booking events will not be delivered: %v", err)
	}

	users := repository.NewUserRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	enquiryRepo := repository.NewEnquiryRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	authService := auth.NewService(users, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()), redisCache)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.SubmitLockSeconds)*time.Second,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
	)
	enquiryService := enquiry.NewEnquiryService(enquiryRepo)
	adminService := admin.NewAdminService(admin.Deps{
		Bookings:  bookingRepo,
		Enquiries: enquiryRepo,
		Users:     users,
		Logs:      repository.NewAdminLogRepository(pool),
		Stats:     repository.NewStatsRepository(pool),
		Booking:   bookingService,
		Flights:   flightService,
		Cache:     redisCache,
	}, cfg.Admin.PageLimit, cfg.Admin.MaxPageLimit)

	router := bootstrap.NewRouter(cfg.HTTP, authService, api.Handlers{
		Auth:     api.NewAuthHandler(authService, cfg.Auth.TokenTTL(), cfg.HTTP.SecureCookies),
		Flights:  api.NewFlightHandler(flightService),
		Catalog:  api.NewCatalogHandler(cat),
		Bookings: api.NewBookingHandler(bookingService),
		Enquiry:  api.NewEnquiryHandler(enquiryService),
		Admin:    api.NewAdminHandler(adminService),
	})

	if err := bootstrap.Run(ctx, cfg.HTTP, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func migrate(dsn string, cat *catalog.Catalog) error {
	db, err := database.Open(dsn)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	_, err = database.SeedFlights(db, cat.SeedFlights())
	return err
}
