package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
	"github.com/Jason0922/final-project-hotel/internal/config"
	"github.com/Jason0922/final-project-hotel/internal/database"
	"github.com/Jason0922/final-project-hotel/internal/handler"
	"github.com/Jason0922/final-project-hotel/internal/middleware"
	"github.com/Jason0922/final-project-hotel/internal/queue"
	"github.com/Jason0922/final-project-hotel/internal/router"
	"github.com/Jason0922/final-project-hotel/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := config.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialect, err := analytics.DialectFor(cfg.Database.Driver)
	if err != nil {
		logger.Error("unsupported database driver", "driver", cfg.Database.Driver)
		os.Exit(1)
	}

	// A data source that cannot be opened leaves pages rendering empty.
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("data source unavailable; serving empty results", "driver", cfg.Database.Driver, "err", err)
	} else {
		defer db.Close()
	}

	var opts []analytics.Option
	if cfg.RabbitMQURL != "" {
		publisher := queue.NewPublisher(cfg.RabbitMQURL, logger)
		go publisher.Run(ctx)
		opts = append(opts, analytics.WithNotifier(publisher))
	}
	repo := analytics.NewRepo(db, dialect, logger, opts...)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Error("parse templates", "err", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	rl := config.LoadRateLimitConfig()
	var rdb *redis.Client
	if rl.Enabled {
		if rdb = config.NewRedisClient(ctx); rdb == nil {
			logger.Warn("redis unreachable; rate limiting disabled")
		} else {
			defer rdb.Close()
		}
	}

	router.Use(e, logger, middleware.RateLimit(rl, rdb, logger))
	router.RegisterRoutes(e, handler.NewDashboardHandler(repo, logger))

	go func() {
		addr := ":" + cfg.Port
		logger.Info("listening", "addr", addr, "env", cfg.Env, "driver", cfg.Database.Driver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
