package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens, so its deferred cleanup runs on each exit path.
func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return fmt.Errorf("error building application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	if err = app.SeedCatalog(ctx); err != nil {
		return fmt.Errorf("error seeding catalog: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(ctx, app.CreateHTTPServer(), logger)
	if err != nil {
		return fmt.Errorf("error building HTTP router: %w", err)
	}
	e.Logger.SetLevel(log.INFO)

	return startWebServer(ctx, stop, e, configs.HTTPPort, logger)
}

// startWebServer serves until ctx is cancelled, then shuts echo down. A listener failure
// cancels ctx through stop and is returned.
func startWebServer(
	ctx context.Context,
	stop context.CancelFunc,
	e *echo.Echo,
	port string,
	logger *slog.Logger,
) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
		stop()
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")

	return <-serveErr
}
