package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/cinema-seat-layout/internal/config"
	"github.com/iliyamo/cinema-seat-layout/internal/database"
	"github.com/iliyamo/cinema-seat-layout/internal/handler"
	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
	"github.com/iliyamo/cinema-seat-layout/internal/middleware"
	"github.com/iliyamo/cinema-seat-layout/internal/queue"
	"github.com/iliyamo/cinema-seat-layout/internal/repository"
	"github.com/iliyamo/cinema-seat-layout/internal/router"
	"github.com/iliyamo/cinema-seat-layout/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if cfg.Env != "dev" {
		logger = logging.NewJSON(os.Stderr, cfg.LogLevel)
	}

	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Redis is optional: cache and rate limit pass through without it.
	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		logger.Warn("redis unavailable; cache and rate limit disabled", "err", err)
	} else {
		defer rdb.Close()
	}

	amqpCfg := config.LoadAMQPConfig()
	var events service.EventPublisher = service.NopPublisher{}
	if amqpCfg.Enabled {
		events = service.NewAMQPPublisher(amqpCfg, logger)
		if amqpCfg.Consume {
			consumer := &queue.Consumer{URL: amqpCfg.URL, Queue: amqpCfg.Queue, Dir: amqpCfg.LogDir, Logger: logger.WithPrefix("consumer")}
			go func() {
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("layout consumer stopped", "err", err)
				}
			}()
		}
	}

	svc := service.NewLayoutService(
		layout.NewEngine(),
		repository.NewHallRepo(db),
		repository.NewLayoutRepo(db),
		repository.NewSeatRepo(db),
		repository.NewTxManager(db),
		events,
		config.LoadLayoutDefaults(),
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	checks := map[string]handler.Check{"mysql": db.PingContext}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	router.RegisterRoutes(e, checks)

	cacheCfg := config.LoadCacheConfig()
	router.RegisterOwner(e, handler.NewLayoutHandler(svc, logger), cfg.JWTSecret, router.OwnerMiddleware{
		RateLimit:  middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger.WithPrefix("ratelimit")),
		Cache:      middleware.NewRedisCache(cacheCfg, rdb, logger.WithPrefix("cache")),
		CachePurge: middleware.NewCachePurge(cacheCfg, rdb, logger.WithPrefix("cache")),
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
