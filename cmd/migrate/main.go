package main

import (
	"log"
	"os"

	"github.com/Domenick1991/happyfares/config"
	"github.com/Domenick1991/happyfares/internal/catalog"
	"github.com/Domenick1991/happyfares/internal/database"
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

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	db, err := database.Open(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	seeded, err := database.SeedFlights(db, cat.SeedFlights())
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("migration finished, %d flights seeded", seeded)
}
