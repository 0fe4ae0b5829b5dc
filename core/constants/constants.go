package constants

import "time"

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	ServerShutdownTimeout = 10 * time.Second
)

// Database connection pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Public id generation
const (
	PublicIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	PublicIDLength   = 10
)

// Context keys
const (
	ContextRequestID = "request_id"
)

// DateFormat is the wire format for all calendar dates (ISO, date only)
const DateFormat = "2006-01-02"
