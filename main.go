package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/klowq/admin-dashboard/internal/config"
	"github.com/klowq/admin-dashboard/internal/server"
	"github.com/klowq/admin-dashboard/pkg/logger"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
