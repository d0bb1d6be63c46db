// Package main is the entry point for the Dancing Logo viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/zhijia2/DancingLogo/internal/app"
	"github.com/zhijia2/DancingLogo/internal/config"
	"github.com/zhijia2/DancingLogo/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Dancing Logo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)
	if src := cfg.Source(); src != "" {
		logger.Info("config loaded", zap.String("path", src))
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := a.Run()
	a.Close()
	if runErr != nil {
		logger.Error("main loop stopped", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
