package main

import (
	"log"

	"github.com/notinrange/blackrose-task-backend/internal/config"
	"github.com/notinrange/blackrose-task-backend/internal/db"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	log.Printf("migrations applied from %s", cfg.MigrationsDir)
}
