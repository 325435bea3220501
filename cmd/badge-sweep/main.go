// Command badge-sweep runs the badge check for every user and awards badges
// nobody's activity triggered, for example after new badges are added to the
// catalog.
//
// Usage:
//
//	badge-sweep [--workers=4]
//
// Reads the database, badges and log sections of the server configuration
// (CONFIG_PATH or ./config.yaml, overridden by DATABASE_DSN, BADGES_* and LOG_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bucketly/bucketly-backend/internal/adapter/postgres"
	badgerepo "github.com/bucketly/bucketly-backend/internal/adapter/postgres/badge"
	userrepo "github.com/bucketly/bucketly-backend/internal/adapter/postgres/user"
	"github.com/bucketly/bucketly-backend/internal/app"
	"github.com/bucketly/bucketly-backend/internal/config"
	"github.com/bucketly/bucketly-backend/internal/service/badge"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent badge checks")
	flag.Parse()

	cfg, err := config.LoadSweep()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "badge-sweep")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	svc := badge.NewService(logger, users, badgerepo.New(pool), cfg.Badges.CatalogTTL)

	res, err := svc.Sweep(ctx, users, cfg.Badges.SweepBatchSize, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "badge-sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Checked %d users, awarded %d badges, %d failed.\n", res.Users, res.Awarded, res.Failed)
}
