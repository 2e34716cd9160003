package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alicheaibx/ems-challenge/internal/config"
	"github.com/alicheaibx/ems-challenge/internal/models"
)

func Connect(cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		gormWriter{log: log},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.DatabaseURL))
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// SQLite allows a single writer; one connection also keeps in-memory databases alive.
		sqlDB.SetMaxOpenConns(1)
	}

	return gdb, nil
}

// gormWriter routes gorm's warnings and slow query reports into zerolog.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Migrate creates the employees and timesheets tables when they do not exist yet.
func Migrate(ctx context.Context, gdb *gorm.DB) error {
	if err := gdb.WithContext(ctx).AutoMigrate(&models.Employee{}, &models.Timesheet{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Reset drops both tables, children first, and recreates them empty.
func Reset(ctx context.Context, gdb *gorm.DB) error {
	migrator := gdb.WithContext(ctx).Migrator()
	for _, table := range []interface{}{&models.Timesheet{}, &models.Employee{}} {
		if err := migrator.DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return Migrate(ctx, gdb)
}
