package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Chidwan3578/Veridex-Local/internal/config"
	"github.com/Chidwan3578/Veridex-Local/internal/database/migration"
	dbpostgres "github.com/Chidwan3578/Veridex-Local/internal/database/postgres"
	"github.com/Chidwan3578/Veridex-Local/internal/database/seeder"
)

// Applies pending migrations and loads the demo data set.
func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seedRunner.Run(ctx, db); err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}

	logger.Printf("Seed | done")
}
