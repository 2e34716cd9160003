// Command initdb drops the employees and timesheets tables and recreates them empty.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/alicheaibx/ems-challenge/internal/config"
	"github.com/alicheaibx/ems-challenge/internal/db"
	"github.com/alicheaibx/ems-challenge/internal/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.New("info", "console")
		bootLogger.Fatal().Err(err).Msg("config error")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Driver).Msg("database connection error")
	}

	if err := db.Reset(context.Background(), database); err != nil {
		logger.Fatal().Err(err).Msg("database reset failed")
	}

	logger.Info().Str("driver", cfg.Driver).Msg("database initialized")
}
