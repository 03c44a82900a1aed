package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/di"
	"github.com/Hiro-mackay/gc-profile/internal/interface/router"
	"github.com/Hiro-mackay/gc-profile/internal/interface/server"
	"github.com/Hiro-mackay/gc-profile/pkg/config"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// @title GC Profile API
// @version 1.0
// @description ユーザープロファイル作成API
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger setup
	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Log.Level
	logConfig.Format = cfg.Log.Format
	if err := logger.Setup(logConfig); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize DI Container
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// Initialize UseCases, Handlers, and Middlewares
	container.InitProfileUseCases()
	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	serverConfig.BodyLimit = cfg.Server.BodyLimit
	serverConfig.CORSOrigins = cfg.Security.CORSOrigins
	serverConfig.EnableHSTS = cfg.Security.EnableHSTS
	srv := server.NewServer(serverConfig)

	// Setup Router
	router.NewRouter(srv.Echo(), handlers, middlewares).Setup()

	// Start background workers
	workerMgr := di.NewWorkerManager(container)
	workerMgr.Start()

	// Start server
	slog.Info("starting server", "addr", srv.Address())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	workerMgr.Shutdown(10 * time.Second)

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
