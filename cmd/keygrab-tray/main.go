package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/petems/keygrab"
	"github.com/petems/keygrab/internal/app"
	"github.com/petems/keygrab/internal/config"
	"github.com/petems/keygrab/internal/logging"
	"github.com/petems/keygrab/internal/permissions"
	"github.com/petems/keygrab/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	// macOS requires accessibility approval before event taps work
	if !permissions.CheckAccessibility() {
		permissions.PromptAccessibility()
		permissions.OpenAccessibilitySettings()
		log.Fatal().Msg("Accessibility permission not granted")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start input capture and hotkey matching
	manager, err := keygrab.NewManager(keygrab.Config{Logger: &log})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start hotkey manager")
	}
	defer manager.Close()

	// Create tray UI first (we'll pass it to app)
	trayUI := tray.New(nil, cfg, Version, Commit, log) // App reference set below

	// Create app with tray as status updater
	application := app.New(app.Config{
		Hotkeys:       manager,
		Config:        cfg,
		Logger:        log,
		StatusUpdater: trayUI,
	})

	// Set app reference in tray
	trayUI.SetApp(application)

	// Register configured hotkeys
	if err := application.RegisterBindings(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register hotkeys")
	}

	// Dispatch hotkey events in the background
	go func() {
		if err := application.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Event loop error")
		}
	}()

	log.Info().Msg("keygrab starting...")

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		cancel()
		if err := application.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
		os.Exit(0)
	}()

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
