package database

import (
	"fmt"

	"meetsync/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// InitSQLite opens the embedded SQLite backend. path may be ":memory:"
// for an ephemeral database (used by the test suites).
func InitSQLite(path string) (*Database, error) {
	logger.Info("Initializing sqlite database...", "path", path)

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	sqlxDB, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		logger.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite serializes writers anyway; a single connection also keeps
	// :memory: databases from vanishing between pool checkouts
	sqlxDB.SetMaxOpenConns(1)

	if err = sqlxDB.Ping(); err != nil {
		logger.Error("Failed to ping sqlite database", "error", err)
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	logger.Info("Database initialized successfully", "driver", "sqlite3", "path", path)

	return &Database{db: sqlxDB.DB, sqlx: sqlxDB}, nil
}
