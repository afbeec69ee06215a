package main

import (
	"log"
	"os"
	"runtime"

	"vide/internal/bootstrap"
	"vide/internal/config"
	"vide/internal/logger"
	"vide/internal/shutdown"
	"vide/internal/toolkit/fyneapp"
	"vide/internal/window"
)

const AppVersion = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Configuration failed: %v", err)
		return 1
	}

	appLogger := logger.New(logger.ParseLevel(cfg.Log.Level), cfg.Log.JSON)
	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.Log.Level,
	})

	app := fyneapp.New(appLogger)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(app)
	shutdownManager.Listen()
	defer shutdownManager.Stop()

	boot := bootstrap.New(window.NewBuilder(appLogger), bootstrap.WithLogger(appLogger))
	return boot.Run(app)
}
