package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/backup"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/logging"
	"github.com/2beens/liftlog/internal/workouts"
)

// workouts google drive backup cmd, meant to be run periodically (e.g. cron)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	credentialsFile := flag.String("gd-creds", "./liftlog-drive-credentials.json", "google drive service account credentials json")
	shareWith := flag.String("share-with", "", "email address the backup files are shared with (reader)")
	logsPath := flag.String("logs-path", "/var/log/liftlog/workouts-backup.log", "backup logs file path (empty for stdout)")
	reinit := flag.Bool("reinit", false, "delete all backups and export everything again")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogLevel:    "debug",
	})

	log.Println("starting workouts backup ...")

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}
	credentialsFileBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
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

	s, err := backup.NewGoogleDriveBackupService(ctx, credentialsFileBytes, workouts.NewRepo(dbPool), *shareWith)
	if err != nil {
		log.Fatalf("failed to create google drive backup service: %s", err)
	}

	baseTime := time.Now()
	var backedUp int
	if *reinit {
		log.Println("!! attention: will reinitialize all again...")
		backedUp, err = s.Reinit(ctx, baseTime)
	} else {
		backedUp, err = s.DoBackup(ctx, baseTime)
	}
	if err != nil {
		log.Fatalf("workouts backup failed: %s", err)
	}

	duration := time.Since(baseTime)
	log.Printf("workouts backup done, %d workouts backed up in %s", backedUp, duration)

	if cfg.BackupUnixSocketAddrDir == "" {
		return
	}
	socketPath := filepath.Join(cfg.BackupUnixSocketAddrDir, cfg.BackupUnixSocketFileName)
	report := backup.Report{WorkoutsCount: backedUp, Duration: duration}
	if err := backup.SendReport(socketPath, report, 10*time.Second); err != nil {
		log.Errorf("send backup report to service: %s", err)
		return
	}
	log.Debugf("backup report sent: %s", report)
}
