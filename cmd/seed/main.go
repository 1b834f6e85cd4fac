package main

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"

	"github.com/joho/godotenv"
)

// Seeds the catalog database with the built-in career profiles. Run once
// before starting the server with DB_* configured.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Enabled() {
		log.Fatal("catalog database not configured: set DB_HOST, DB_NAME, DB_USER")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer pool.Close()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, pool); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("catalog seeded")
}
