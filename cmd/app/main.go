package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	fulfillmenthttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
)

func main() {
	// Missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "fulfillment",
		Level:       logger.ParseLevel(config.LogLevel),
		Console:     config.LogConsole,
	})

	root, err := cmd.NewCompositionRoot(config, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background jobs")
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := fulfillmenthttp.NewServer(root.CreateCommandHandlers(), root.CreateQueryHandlers(), log)
	server.RegisterRoutes(e)

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		log.Info().Str("address", address).Msg("http server starting")
		if serveErr := e.Start(address); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatal().Err(serveErr).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}
