package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pr-activity-service/api"
	"pr-activity-service/internal/auth"
	"pr-activity-service/internal/config"
	"pr-activity-service/internal/database"
	"pr-activity-service/internal/domain"
	"pr-activity-service/internal/github"
	"pr-activity-service/internal/handler"
	"pr-activity-service/internal/ratelimit"
	"pr-activity-service/internal/repository"
	"pr-activity-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf("Config loaded with defaults: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// Хранилище кэша
	db, dialect, err := database.Open(cfg)
	if err != nil {
		logger.Fatalf("Cache store connection failed: %v", err)
	}
	defer db.Close()

	contributionRepo := repository.NewContributionRepository(db, dialect)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	err = contributionRepo.Init(initCtx)
	cancelInit()
	if err != nil {
		logger.Fatalf("Cache store initialization failed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"driver":  cfg.CacheDriver,
		"dialect": dialect,
	}).Info("Cache store ready")

	// Удаленный API
	resolver := auth.NewResolver(auth.ServerToken(cfg.GitHubToken, cfg.EncryptionPassword, logger))
	client := github.NewClient(github.Options{
		BaseURL:  cfg.GitHubAPIBase,
		Timeout:  cfg.GitHubTimeout,
		RPS:      cfg.GitHubRPS,
		MaxPages: cfg.GitHubMaxPages,
	}, logger)
	sources := func(cred *domain.Credential) domain.PRSource {
		return client.WithCredential(cred)
	}

	// Use Cases
	contributionUC := usecase.NewContributionUseCase(contributionRepo, resolver, sources, cfg.GitHubConcurrency, logger)
	statsUC := usecase.NewStatsUseCase(contributionUC)

	// Ограничение частоты запросов
	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	go prune(pruneCtx, limiter, cfg.RateLimitPruneInterval, logger)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.AdmissionMiddleware(limiter, logger))

	apiHandler := handler.NewAPIHandler(contributionUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

// prune периодически удаляет устаревшие записи ограничителя.
func prune(ctx context.Context, limiter *ratelimit.SlidingWindow, interval time.Duration, logger *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.Prune(); removed > 0 {
				logger.WithFields(logrus.Fields{
					"removed": removed,
					"clients": limiter.Keys(),
				}).Debug("Rate limiter pruned")
			}
		}
	}
}
