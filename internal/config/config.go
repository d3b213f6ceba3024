// Package config provides configuration structures and validation for the
// application. Settings come from env files and environment variables, with
// defaults suitable for local development.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration. Each field represents
// a major subsystem's settings and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Bank        BankConfig
	Snapshot    SnapshotConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// BankConfig contains the ledger registry configuration
type BankConfig struct {
	Name            string // Bank display name, immutable for the process lifetime
	DefaultCurrency string // Currency applied when a request omits one
}

// SnapshotConfig contains snapshot file persistence configuration
type SnapshotConfig struct {
	Path string // Path of the JSON snapshot file
}

// WorkerPoolConfig contains end-of-day settlement pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of concurrent account settlements
}

// validate checks all configuration values against their minimum requirements
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Bank config
	if c.Bank.Name == "" {
		validationErrors = append(validationErrors, "BANK_NAME is required")
	}
	if len(c.Bank.DefaultCurrency) != 3 {
		validationErrors = append(validationErrors, "BANK_DEFAULT_CURRENCY must be a 3-letter code")
	}

	// Validate Snapshot config
	if c.Snapshot.Path == "" {
		validationErrors = append(validationErrors, "SNAPSHOT_PATH is required")
	}

	// Validate WorkerPool config
	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
