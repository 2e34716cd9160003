package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.Driver != DriverSQLite || cfg.DatabaseURL != "ems.db" {
		t.Fatalf("unexpected store defaults: %s %s", cfg.Driver, cfg.DatabaseURL)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected log defaults: %s %s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t)

	path := filepath.Join(dir, "config.yaml")
	content := "port: \"8081\"\ndriver: postgres\ndatabase_url: postgres://file\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "8081" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.Driver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.Driver)
	}
	if cfg.DatabaseURL != "postgres://env" {
		t.Fatalf("expected env to override file, got %s", cfg.DatabaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t)
	os.Unsetenv("APP_PORT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=9090\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("APP_PORT") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port from .env, got %s", cfg.Port)
	}
}

func TestLoadRejectsPostgresWithoutURL(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for postgres without DATABASE_URL")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
