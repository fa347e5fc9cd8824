package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/novamart/storefront/internal/config"
	"github.com/novamart/storefront/internal/container"
)

func main() {
	log.Info("Starting storefront...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	app, err := container.New(cfg, log.StandardLogger())
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Storefront exited with error: %v", err)
	}

	log.Info("Storefront stopped")
}
