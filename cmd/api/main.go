package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/config"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/validate"
	"github.com/evandrarf/cryptolearn-be/internal/scheduler"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	catalog, err := config.LoadCatalog(viperConfig, log)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	sessions := config.NewSessionStore(viperConfig)
	prices := config.NewPriceFeed(viperConfig, log)

	jobs := scheduler.New(log)
	if err := jobs.EverySweep("sessions", viperConfig.GetDuration("session.sweep_interval"), sessions); err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}
	if err := jobs.EverySweep("prices", viperConfig.GetDuration("pricefeed.sweep_interval"), prices); err != nil {
		log.Fatalf("Failed to schedule price cache sweep: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	config.Bootstrap(&config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		Catalog:   catalog,
		Sessions:  sessions,
		Prices:    prices,
	})

	listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}
}
