package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/medequip-service/internal/api/http"
	"github.com/spec-kit/medequip-service/internal/api/http/handlers"
	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/config"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/observability"
	"github.com/spec-kit/medequip-service/internal/persistence"
	"github.com/spec-kit/medequip-service/internal/repository"
	"github.com/spec-kit/medequip-service/internal/service"
	"github.com/spec-kit/medequip-service/internal/worker"
)

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	equipmentRepo := repository.NewEquipmentRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, redis, logger, cfg.Notification), logger)

	rt := service.Runtime{Dispatcher: dispatcher, Logger: logger}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), time.Now)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		TokenManager: tokens,
		Runtime:      rt,
	})
	equipmentService := service.NewEquipmentService(equipmentRepo, rt)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:    ticketRepo,
		EquipmentRepo: equipmentRepo,
		Runtime:       rt,
	})
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, equipmentRepo, rt)
	statsService := service.NewStatsService(userRepo, equipmentRepo, ticketRepo)

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name, httptransport.MiddlewareConfig{
		Logger:           logger,
		Metrics:          metrics,
		RequestTimeout:   cfg.App.RequestTimeout(),
		CORSAllowOrigins: cfg.App.CORSAllowOrigins,
	}, httptransport.RouteConfig{
		Prefix: cfg.App.APIPrefix,
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Equipment:      handlers.NewEquipmentHandler(equipmentService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Stats:          handlers.NewStatsHandler(statsService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, userRepo),
	})

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
