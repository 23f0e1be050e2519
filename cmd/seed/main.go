package main

import (
	"context"
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/logging"
	"github.com/2beens/liftlog/internal/seed"
	"github.com/2beens/liftlog/internal/workouts"
)

// seeds the predefined exercise catalog and, optionally, a demo user with random workouts

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	demoDays := flag.Int("demo-days", 0, "create a demo user with workouts over the last N days (0 to skip)")
	randSeed := flag.Int64("seed", time.Now().UnixNano(), "random seed for demo data")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{LogLevel: "debug"})

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("LIFTLOG_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.ApplySchema(ctx, dbPool); err != nil {
		log.Fatalf("apply schema: %s", err)
	}

	catalogRepo := catalog.NewRepo(dbPool)
	catalogService := catalog.NewService(catalogRepo, cfg.CatalogCacheSizeMB, catalog.DefaultPredefinedTTL)
	// auth service without redis, only registration is used
	authService := auth.NewAuthService(auth.NewUsersRepo(dbPool), cfg.SessionTTL(), nil)

	seeder := seed.NewSeeder(
		seed.NewGenerator(*randSeed),
		catalogRepo,
		authService,
		catalogService,
		workouts.NewService(workouts.NewRepo(dbPool), catalogService, nil),
	)

	added, err := seeder.SeedCatalog(ctx, catalog.DefaultPredefined)
	if err != nil {
		log.Fatalf("seed catalog: %s", err)
	}
	log.Printf("predefined exercises added: %d", added)

	if *demoDays <= 0 {
		return
	}

	demo, err := seeder.SeedDemoUser(ctx, *demoDays, time.Now())
	if err != nil {
		log.Fatalf("seed demo user: %s", err)
	}
	log.Printf("demo user created: %s / %s (id %d), workouts: %d",
		demo.Credentials.Username, demo.Credentials.Password, demo.UserID, demo.Workouts)
}
