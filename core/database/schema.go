package database

import (
	"context"
	"fmt"

	"meetsync/core/constants"
	"meetsync/core/logger"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		public_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		earliest DATE NOT NULL,
		latest DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS unavailabilities (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		day DATE NOT NULL,
		time_of_day TEXT NOT NULL,
		UNIQUE (event_id, user_id, day, time_of_day)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		public_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		earliest DATE NOT NULL,
		latest DATE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS unavailabilities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		day DATE NOT NULL,
		time_of_day TEXT NOT NULL,
		UNIQUE (event_id, user_id, day, time_of_day)
	)`,
}

// EnsureSchema creates the three core tables when they do not exist yet.
// Run at startup, the way a fresh install bootstraps itself.
func EnsureSchema(ctx context.Context, db IDatabase) error {
	schema := sqliteSchema
	if db.DriverName() == constants.DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:EnsureSchema", err)
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	logger.Info("Database schema ensured", "driver", db.DriverName())
	return nil
}
