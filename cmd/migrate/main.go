// Command migrate manages the fishweb Postgres schema with goose.
//
// Typical usage:
//
//	migrate -cmd up
//	migrate -cmd create -name add_wishlist_items
//	migrate -cmd version -version 20260115103000
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"github.com/fishweb-iq/fishweb-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "fishweb-migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "schema command: up|down|status|version|create|validate")
	dir := flag.String("dir", migrate.DefaultDir, "goose migrations directory")
	name := flag.String("name", "", "new migration name for -cmd=create, e.g. add_wishlist_items")
	version := flag.String("version", "", "target schema version (YYYYMMDDHHMMSS) for -cmd=version")

	flag.Parse()

	cfg, err := config.Load()
	mustReady(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "fishweb-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	// create and validate work on the migrations directory alone,
	// no database connection needed.
	switch *cmd {
	case "create":
		if *name == "" {
			fmt.Fprintln(os.Stderr, "missing -name for create")
			os.Exit(1)
		}
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		if err := migrate.ValidateDir(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	mustReady(ctx, logg, "database", err)
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	mustReady(ctx, logg, "sql database", err)

	logg.Info(ctx, "applying store schema command")

	switch *cmd {
	case "up", "down", "status":
		runGoose(ctx, logg, sqlDB, *dir, *cmd)

	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		if err := migrate.MigrateToVersion(ctx, sqlDB, *dir, *version); err != nil {
			fmt.Fprintf(os.Stderr, "goose version migrate failed: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

func runGoose(ctx context.Context, logg *logger.Logger, sqlDB *sql.DB, dir, action string) {
	if err := migrate.Run(ctx, sqlDB, dir, action); err != nil {
		fmt.Fprintf(os.Stderr, "goose %s failed: %v\n", action, err)
		os.Exit(1)
	}
	logg.Info(ctx, fmt.Sprintf("goose %s complete", action))
}

func mustReady(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("migrate cannot start without %s", resource), err)
	os.Exit(1)
}
