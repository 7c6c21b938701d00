package database

import (
	"fmt"
	"log"

	"github.com/Domenick1991/happyfares/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables used by the repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Booking{}, &Enquiry{}, &Flight{}, &AdminLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("database migrations completed")
	return nil
}

// SeedFlights inserts flights only when the flights table is empty.
// It returns the number of rows inserted.
func SeedFlights(db *gorm.DB, flights []domain.Flight) (int, error) {
	var count int64
	if err := db.Model(&Flight{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	if count > 0 || len(flights) == 0 {
		return 0, nil
	}

	rows := make([]Flight, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, Flight{
			From:          f.From,
			To:            f.To,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Airline:       f.Airline,
			Price:         f.Price,
			Duration:      f.Duration,
			Stops:         f.Stops,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("seed flights: %w", err)
	}
	log.Printf("seeded %d flights", len(rows))
	return len(rows), nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
}
