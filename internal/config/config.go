package config // package config resolves application configuration once at startup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all runtime configuration values.  It is resolved once by
// Load and then passed explicitly to the components that need it.
type Config struct {
	Env         string   `toml:"env"`          // application environment (e.g. "dev", "prod")
	Port        string   `toml:"port"`         // HTTP port to listen on
	LogLevel    string   `toml:"log_level"`    // debug, info, warn or error
	RabbitMQURL string   `toml:"rabbitmq_url"` // broker for degradation events; empty disables publishing
	Database    Database `toml:"database"`
}

// Database describes the data source the dashboard reads from.  Driver
// selects between a MySQL server and a local SQLite file at Path.
type Database struct {
	Driver       string `toml:"driver"` // "mysql" or "sqlite3"
	Host         string `toml:"host"`
	Port         string `toml:"port"`
	User         string `toml:"user"`
	Pass         string `toml:"password"`
	Name         string `toml:"name"`
	Path         string `toml:"path"` // SQLite file path
	MaxOpenConns int    `toml:"max_open_conns"`
}

// Defaults applied after the config file and the environment.
const (
	DefaultConfigPath = "config.toml"
	DefaultDBPath     = "data/hotel.db"
	DefaultPort       = "5000"
)

// Load resolves the configuration from, in order of precedence, the optional
// TOML file named by HOTEL_CONFIG (default config.toml), environment
// variables, and hardcoded defaults.  A missing file is not an error; a
// malformed one is.
func Load() (Config, error) {
	var cfg Config

	path := envStr("HOTEL_CONFIG", DefaultConfigPath)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	fill(&cfg.Env, "APP_ENV", "dev")
	fill(&cfg.Port, "APP_PORT", DefaultPort)
	fill(&cfg.LogLevel, "LOG_LEVEL", "info")
	fill(&cfg.RabbitMQURL, "RABBITMQ_URL", "")

	db := &cfg.Database
	fill(&db.Driver, "DB_DRIVER", "")
	fill(&db.Host, "DB_HOST", "")
	fill(&db.Port, "DB_PORT", "3306")
	fill(&db.User, "DB_USER", "")
	fill(&db.Pass, "DB_PASS", "")
	fill(&db.Name, "DB_NAME", "")
	fill(&db.Path, "DB_PATH", DefaultDBPath)
	if db.MaxOpenConns <= 0 {
		db.MaxOpenConns = envInt("DB_MAX_OPEN_CONNS", 25)
	}
	if db.Driver == "" {
		// a configured MySQL host implies the server driver
		if db.Host != "" {
			db.Driver = "mysql"
		} else {
			db.Driver = "sqlite3"
		}
	}
	db.Driver = strings.ToLower(db.Driver)

	return cfg, nil
}

// IsProd reports whether the application runs in a production environment.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// fill sets *dst from the environment, then from def, when the file left it empty.
func fill(dst *string, key, def string) {
	if *dst != "" {
		return
	}
	*dst = envStr(key, def)
}
