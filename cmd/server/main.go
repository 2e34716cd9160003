package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alicheaibx/ems-challenge/internal/config"
	"github.com/alicheaibx/ems-challenge/internal/db"
	"github.com/alicheaibx/ems-challenge/internal/httpapi"
	"github.com/alicheaibx/ems-challenge/internal/logging"
	"github.com/alicheaibx/ems-challenge/internal/service"
)

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// -- Configs preload --
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.New("info", "console")
		bootLogger.Fatal().Err(err).Msg("config error")
	}

	// -- Logger --
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// -- Connect to DB --
	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Driver).Msg("database connection error")
	}
	if err := db.Migrate(ctx, database); err != nil {
		logger.Fatal().Err(err).Msg("database migration error")
	}

	employeeService := service.NewEmployeeService(database)
	timesheetService := service.NewTimesheetService(database)
	handler := httpapi.NewHandler(employeeService, timesheetService, logger)

	// -- Router --
	mux := http.NewServeMux()
	mux.Handle("/employees", handler)
	mux.Handle("/employees/", handler)
	mux.Handle("/timesheets", handler)
	mux.Handle("/timesheets/", handler)
	mux.Handle("/export.xlsx", handler)
	mux.HandleFunc("/healthcheck", healthcheck)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: httpapi.Chain(mux,
			httpapi.Logging(logger),
			httpapi.Recovery(logger),
			httpapi.CORS,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().Str("port", cfg.Port).Str("driver", cfg.Driver).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}
