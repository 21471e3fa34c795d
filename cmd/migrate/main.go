package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/medequip-service/internal/config"
	"github.com/spec-kit/medequip-service/internal/observability"
	"github.com/spec-kit/medequip-service/internal/persistence"
)

const usage = "usage: migrate up|down|status"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cmd := persistence.MigrationCommand(os.Args[1])
	switch cmd {
	case persistence.MigrateUp, persistence.MigrateDown, persistence.MigrateStatus:
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.Migrate(ctx, pg.PoolHandle(), cmd, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
}
