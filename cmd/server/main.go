package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare-web/internal/adapters/api"
	"vetcare-web/internal/adapters/browser"
	"vetcare-web/internal/adapters/http/handlers"
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/adapters/http/routes"
	"vetcare-web/internal/adapters/persistence/models"
	"vetcare-web/internal/adapters/persistence/repositories"
	"vetcare-web/internal/config"
	"vetcare-web/internal/core/services"
	"vetcare-web/internal/pkg/logger"
	"vetcare-web/internal/pkg/sealer"
	"vetcare-web/internal/pkg/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// memoryIdle is how long an unused browser keeps its controller in memory
const memoryIdle = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.AppMode, cfg.LogLevel)
	appLog := logger.Component(log, "app")
	appLog.WithField("mode", cfg.AppMode).Info("configuration loaded")

	shutdownTracing := telemetry.Setup("vetcare-web", logger.Component(log, "telemetry"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, purger, checks, err := openStore(ctx, cfg, logger.Component(log, "store"))
	if err != nil {
		appLog.WithError(err).Fatal("failed to open session store")
	}

	var seal *sealer.Sealer
	if cfg.Store.SealKey != "" {
		seal = sealer.New(cfg.Store.SealKey)
	} else if cfg.IsProd() && cfg.Store.Driver != config.StoreMemory {
		appLog.Warn("STORE_SEAL_KEY not set, tokens are stored unsealed")
	}

	registry := services.NewBrowserRegistry(ctx, browser.NewFactory(browser.Options{
		Repo:       repo,
		Sealer:     seal,
		APIBaseURL: cfg.API.BaseURL,
		HTTPClient: api.NewHTTPClient(cfg.API.Timeout),
		Log:        log,
	}), logger.Component(log, "registry"))

	purge := services.NewPurgeService(registry, purger, memoryIdle, cfg.Session.Idle, logger.Component(log, "purge"))
	if err := purge.Start(cfg.Session.PurgeCron); err != nil {
		appLog.WithError(err).Fatal("invalid PURGE_CRON")
	}

	app := fiber.New(fiber.Config{
		AppName:      "VetCare Web",
		ErrorHandler: middleware.NewErrorHandler(logger.Component(log, "http")),
	})

	middleware.Setup(app, cfg, logger.Component(log, "http"))

	routes.Setup(app, routes.Dependencies{
		Config:   cfg,
		Registry: registry,
		Checks:   checks,
		Log:      log,
	})

	go gracefulShutdown(app, appLog)

	appLog.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"backend": cfg.API.BaseURL,
		"store":   cfg.Store.Driver,
	}).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.WithError(err).Error("server stopped with error")
	}

	// Listen has returned: stop background work and release connections
	cancel()
	purge.Stop()
	closeStore(cfg, appLog)

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		appLog.WithError(err).Warn("tracing shutdown failed")
	}
	appLog.Info("server stopped gracefully")
}

// openStore connects the configured storage backend. purger is nil for
// backends that expire entries on their own.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Entry) (repositories.StorageRepository, services.StalePurger, map[string]handlers.HealthCheck, error) {
	switch cfg.Store.Driver {
	case config.StoreMySQL:
		db, err := config.ConnectDatabase(cfg, log)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := models.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		log.Info("database migration completed")
		repo := repositories.NewStorageRepository(db)
		return repo, repo, map[string]handlers.HealthCheck{"database": config.DatabaseHealthCheck}, nil

	case config.StoreRedis:
		client, err := config.ConnectRedis(ctx, cfg, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewRedisStorageRepository(client, cfg.Session.Idle), nil,
			map[string]handlers.HealthCheck{"redis": config.RedisHealthCheck}, nil

	default:
		log.Warn("using in-memory session store, sessions are lost on restart")
		repo := repositories.NewMemoryStorageRepository()
		return repo, repo, nil, nil
	}
}

func closeStore(cfg *config.Config, log *logrus.Entry) {
	var err error
	switch cfg.Store.Driver {
	case config.StoreMySQL:
		err = config.CloseDatabase()
	case config.StoreRedis:
		err = config.CloseRedis()
	}
	if err != nil {
		log.WithError(err).Warn("closing session store failed")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *logrus.Entry) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
}
