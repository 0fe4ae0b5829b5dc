package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"meetsync/core/config"
	"meetsync/core/constants"
	"meetsync/core/database"
	"meetsync/core/logger"
	"meetsync/core/middleware"
	"meetsync/modules/availability"
	"meetsync/modules/event"
	"meetsync/modules/user"

	"github.com/labstack/echo/v4"
)

// Run loads configuration, opens the store, wires every module and serves
// until interrupted
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}
	if cfg.Seed {
		if err := event.SeedDemo(ctx, db); err != nil {
			logger.Warn("Server:Run:SeedDemo", "error", err)
		}
	}

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware()
	mw.Setup(e)

	setupStatic(e, cfg.Server.StaticDir)

	userSvc := user.Init(e, db, mw)
	eventSvc := event.Init(e, db, mw)
	availability.Init(e, db, mw, userSvc, eventSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		logger.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server:Run:Shutdown", err)
		return err
	}

	return nil
}

func openDatabase(cfg config.DatabaseConfig) (database.IDatabase, error) {
	switch cfg.Driver {
	case constants.DriverPostgres:
		return database.InitPostgres(cfg)
	case constants.DriverSQLite, "sqlite":
		return database.InitSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// setupStatic serves the bundled front-end when a static dir is configured.
// The API is fully usable without it.
func setupStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		logger.Warn("Static dir not found, skipping", "dir", dir)
		return
	}
	e.File("/", filepath.Join(dir, "index.html"))
	e.Static("/assets", filepath.Join(dir, "assets"))
}
