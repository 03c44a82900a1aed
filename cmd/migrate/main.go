package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-profile/pkg/config"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// マイグレーションを最新バージョンまで適用します
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Log.Level
	logConfig.Format = cfg.Log.Format
	if err := logger.Setup(logConfig); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
