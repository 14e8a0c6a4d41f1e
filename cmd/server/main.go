package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/initializer"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/app"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// @title Gestomoney API
// @version 1.0.0
// @description Personal finance bookkeeping API
// @host localhost:5002
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

const shutdownTimeout = 10 * time.Second

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, cleanup, err := build(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server",
			"env", cfg.Env,
			"address", cfg.Server.Addr(),
			"scheme", cfg.Server.Scheme,
		)
		errCh <- fiberApp.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// build wires storage, services and routes for cfg.
func build(cfg *config.App) (*fiber.App, func(), error) {
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return webapi.SetupApp(app.New(deps, cfg)), cleanup, nil
}
