package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Jason0922/final-project-hotel/internal/config"
)

// Open connects to the configured data source and verifies the connection.
// The returned pool is shared by every request; the dashboard only reads.
func Open(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", driver, err)
	}
	return db, nil
}

func dataSource(cfg config.Database) (driver, dsn string, err error) {
	switch cfg.Driver {
	case "mysql":
		auth := cfg.User
		if cfg.Pass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
		}
		// parseTime stays off: every date column is formatted to text in SQL
		dsn = fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&collation=utf8mb4_unicode_ci&loc=UTC",
			auth, cfg.Host, cfg.Port, cfg.Name)
		return "mysql", dsn, nil
	case "sqlite3", "sqlite":
		if cfg.Path == "" {
			return "", "", fmt.Errorf("database: sqlite path is empty")
		}
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", "", fmt.Errorf("database: create data directory: %w", err)
			}
		}
		// read-only would refuse to create a fresh file; query_only keeps writes out
		return "sqlite3", "file:" + cfg.Path + "?_query_only=1&_busy_timeout=5000", nil
	default:
		return "", "", fmt.Errorf("database: unsupported driver %q", cfg.Driver)
	}
}
