package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/adapter/cli"
	"github.com/felixgeelhaar/quill/adapter/cli/stats"
	"github.com/felixgeelhaar/quill/internal/app"
	"github.com/felixgeelhaar/quill/pkg/config"
	"github.com/felixgeelhaar/quill/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	if container.Invalidator != nil {
		go func() {
			if err := container.Invalidator.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error("cache invalidator stopped", "error", err)
			}
		}()
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		logger.Error("invalid QUILL_USER_ID", "error", err)
		os.Exit(1)
	}
	stats.SetService(container.AnalyticsService)
	stats.SetCurrentUserID(userID)
	stats.SetDefaults(cfg.Period, cfg.Timezone, cfg.DailyWordGoal)

	cli.AddCommand(stats.Cmd)
	cli.Execute()
}
