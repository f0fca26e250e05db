// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for resto-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the transport hash key,
	// credential location and schema version.
	App App `envPrefix:"APP_"`

	// Storage holds the local replica settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the reference sync server listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote sync endpoint settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds periodic sync intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds queue, batching, retry and conflict resolution tunables.
	Sync Sync `envPrefix:"SYNC_"`

	// Network holds connectivity probing settings.
	Network Network `envPrefix:"NETWORK_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the local replica.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite replica.
type DB struct {
	// DSN is the SQLite database file path (e.g. "resto-sync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenFile is the path of the file holding the bearer token. The file
	// is re-read when the server answers 401.
	// Env: APP_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// TokenSignKey is the HMAC key the reference server verifies device
	// tokens with. Empty disables authentication.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// SchemaVersion is sent with every pull request.
	// Env: APP_SCHEMA_VERSION
	SchemaVersion int `env:"SCHEMA_VERSION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the reference sync server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote endpoint settings.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ProbeURL is the URL probed with HEAD requests. Empty means
	// HTTPAddress + "/api/health".
	// Env: ADAPTER_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// SyncTimeout bounds every pull/push call.
	// Env: ADAPTER_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`
}

// Workers holds the periodic sync intervals.
type Workers struct {
	// ForegroundInterval is the sync period while the application is in use.
	// Env: WORKERS_FOREGROUND_INTERVAL
	ForegroundInterval time.Duration `env:"FOREGROUND_INTERVAL"`

	// BackgroundInterval is the longer sync period used in background mode.
	// Env: WORKERS_BACKGROUND_INTERVAL
	BackgroundInterval time.Duration `env:"BACKGROUND_INTERVAL"`

	// Background selects the background interval.
	// Env: WORKERS_BACKGROUND
	Background bool `env:"BACKGROUND"`
}

// Sync holds queue, batching, retry and conflict resolution tunables.
type Sync struct {
	BatchSize             int           `env:"BATCH_SIZE"`
	MaxQueueSize          int           `env:"MAX_QUEUE_SIZE"`
	QueueWarningThreshold int           `env:"QUEUE_WARNING_THRESHOLD"`
	QueueCleanupThreshold int           `env:"QUEUE_CLEANUP_THRESHOLD"`
	QueueItemTTL          time.Duration `env:"QUEUE_ITEM_TTL"`

	RetryBaseDelay     time.Duration `env:"RETRY_BASE_DELAY"`
	RetryMaxDelay      time.Duration `env:"RETRY_MAX_DELAY"`
	RetryBackoffFactor float64       `env:"RETRY_BACKOFF_FACTOR"`
	MaxRetryCount      int           `env:"MAX_RETRY_COUNT"`

	// DefaultStrategy is the global conflict resolution strategy.
	// Env: SYNC_DEFAULT_STRATEGY
	DefaultStrategy string `env:"DEFAULT_STRATEGY"`

	// Strategies overrides the strategy per collection,
	// e.g. "orders:merge,staff:server_wins".
	// Env: SYNC_STRATEGIES
	Strategies map[string]string `env:"STRATEGIES" envSeparator:"," envKeyValSeparator:":"`

	// LogRetention is the number of finished sync logs kept by cleanup.
	// Env: SYNC_LOG_RETENTION
	LogRetention int `env:"LOG_RETENTION"`
}

// Network holds connectivity probing settings.
type Network struct {
	ProbeInterval      time.Duration `env:"PROBE_INTERVAL"`
	ProbeTimeout       time.Duration `env:"PROBE_TIMEOUT"`
	StabilizationDelay time.Duration `env:"STABILIZATION_DELAY"`

	// ProbeOnly makes probe results drive the connected flag when no
	// platform connectivity source is available.
	// Env: NETWORK_PROBE_ONLY
	ProbeOnly bool `env:"PROBE_ONLY"`
}

// Log holds the rotating log file settings.
type Log struct {
	File       string `env:"FILE"`
	Level      string `env:"LEVEL"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB"`
	MaxBackups int    `env:"MAX_BACKUPS"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS"`
	Compress   bool   `env:"COMPRESS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (the first source that
// sets a field wins):
//  1. Environment variables
//  2. Command-line flags (nil skips them)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
