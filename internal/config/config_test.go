package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "APP_PORT", "LOG_LEVEL", "RABBITMQ_URL",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_PATH", "DB_MAX_OPEN_CONNS",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("HOTEL_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
}

func TestLoad_DefaultsToSQLiteFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Fatalf("unexpected driver: %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != DefaultDBPath {
		t.Fatalf("unexpected path: %q", cfg.Database.Path)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Fatalf("unexpected max open conns: %d", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_EnvironmentFillsGaps(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "last_resort_hotels")
	t.Setenv("APP_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != "mysql" {
		t.Fatalf("host without driver should imply mysql, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Port != "3306" || cfg.Database.Name != "last_resort_hotels" {
		t.Fatalf("unexpected database: %+v", cfg.Database)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
}

func TestLoad_FileTakesPrecedenceOverEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
env = "prod"
port = "9000"

[database]
driver = "mysql"
host = "file-host"
name = "from_file"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOTEL_CONFIG", path)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_USER", "reporter")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Host != "file-host" {
		t.Fatalf("file value should win, got %q", cfg.Database.Host)
	}
	if cfg.Database.User != "reporter" {
		t.Fatalf("env should fill empty field, got %q", cfg.Database.User)
	}
	if !cfg.IsProd() || cfg.Port != "9000" {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("port = [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOTEL_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "yes")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Fatalf("expected enabled")
	}
	if cfg.Capacity != 1 {
		t.Fatalf("capacity should clamp to 1, got %d", cfg.Capacity)
	}
	if cfg.TTL != 10*time.Second {
		t.Fatalf("ttl should be at least five refill intervals, got %s", cfg.TTL)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Env: "prod", LogLevel: "warn"}, &buf)
	logger.Info("dropped")
	logger.Warn("kept", "component", "analytics")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("prod logs should be one json line: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "kept" || entry["component"] != "analytics" {
		t.Fatalf("unexpected entry: %v", entry)
	}

	buf.Reset()
	NewLogger(Config{Env: "dev", LogLevel: "nonsense"}, &buf).Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte("level=INFO msg=hello")) {
		t.Fatalf("dev logs should be text at info: %q", buf.String())
	}
}
