// Command seeder loads demo posts from a YAML fixtures file into the post
// store. Posts go through the regular submission flow, so invalid
// fixtures are reported and skipped.
//
// Flags:
//
//	--fixtures       path to the fixtures file (overrides config)
//	--dry-run        validate fixtures without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mknhm1/itemproject/internal/adapter/postgres"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/category"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/post"
	"github.com/mknhm1/itemproject/internal/app"
	"github.com/mknhm1/itemproject/internal/app/seeder"
	"github.com/mknhm1/itemproject/internal/config"
	"github.com/mknhm1/itemproject/internal/service/gadget"
)

func main() {
	fixturesFlag := flag.String("fixtures", "", "path to fixtures YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate fixtures without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *fixturesFlag != "" {
		seederCfg.FixturesPath = *fixturesFlag
	}

	fixtures, err := seeder.LoadFixtures(seederCfg.FixturesPath)
	if err != nil {
		logger.Error("load fixtures", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := gadget.NewService(logger, post.New(pool), category.New(pool), nil, postgres.NewTxManager(pool), appCfg.Gadget.PageSize)

	pipeline := seeder.NewPipeline(logger, svc, *seederCfg)
	if err := pipeline.Run(ctx, fixtures); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("seeding completed with errors")
		os.Exit(1)
	}
}
