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

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"bmiguide.healthguide.org/internal/app"
	"bmiguide.healthguide.org/internal/appconf"
	"bmiguide.healthguide.org/internal/logging"
	"bmiguide.healthguide.org/internal/metrics"
	"bmiguide.healthguide.org/internal/restapi"
	"bmiguide.healthguide.org/internal/webui"
)

func main() {
	// A missing .env file is fine; flags and the real environment still apply.
	envErr := godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logging.LogError(logger, "failed to load .env file", envErr)
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewMetrics(),
	}

	if err := run(application); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// buildHandler mounts the API and, in development only, the debug pages.
func buildHandler(api *restapi.RestAPI) http.Handler {
	var extra []func(*httprouter.Router)
	if api.Config.Env == appconf.Development {
		ui := &webui.WebUI{Application: api.Application}
		extra = append(extra, ui.SetWebUIRoutes)
	}
	return api.Handler(extra...)
}

func run(application *app.Application) error {
	logger := application.Logger

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      buildHandler(api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", application.Config.Env.String()))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shutdownErr error
	logging.HandleDeferredError(&shutdownErr, func() error {
		return srv.Shutdown(shutdownCtx)
	}, logger, "server_shutdown")
	return shutdownErr
}
