// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// TokenFile is the bearer token file.
	TokenFile string
	// SchemaVersion is sent with pull requests.
	SchemaVersion int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server base URL.
	HTTPAddress string
	// ProbeURL is probed with HEAD requests.
	ProbeURL string
	// SyncTimeout bounds every pull/push call.
	SyncTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client periodic sync settings.
type ClientWorkers struct {
	ForegroundInterval time.Duration
	BackgroundInterval time.Duration
	Background         bool
}

// SyncInterval returns the interval matching the current mode.
func (w ClientWorkers) SyncInterval() time.Duration {
	if w.Background {
		return w.BackgroundInterval
	}
	return w.ForegroundInterval
}

// ClientSync contains the sync engine tunables.
type ClientSync struct {
	BatchSize             int
	MaxQueueSize          int
	QueueWarningThreshold int
	QueueCleanupThreshold int
	QueueItemTTL          time.Duration

	RetryBaseDelay     time.Duration
	RetryMaxDelay      time.Duration
	RetryBackoffFactor float64
	MaxRetryCount      int

	DefaultStrategy string
	// Strategies maps collection names to strategy names.
	Strategies   map[string]string
	LogRetention int
}

// ClientNetwork contains connectivity probing settings.
type ClientNetwork struct {
	ProbeInterval      time.Duration
	ProbeTimeout       time.Duration
	StabilizationDelay time.Duration
	ProbeOnly          bool
}

// ClientLog contains the log file settings.
type ClientLog struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the sync server endpoint and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains periodic sync settings.
	Workers ClientWorkers
	// Sync contains queue, retry and conflict tunables.
	Sync ClientSync
	// Network contains connectivity probing settings.
	Network ClientNetwork
	// Log contains the log file settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	probeURL := cfg.Adapter.ProbeURL
	if probeURL == "" && cfg.Adapter.HTTPAddress != "" {
		probeURL = strings.TrimRight(cfg.Adapter.HTTPAddress, "/") + "/api/health"
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			TokenFile:     cfg.App.TokenFile,
			SchemaVersion: cfg.App.SchemaVersion,
		},
		Adapter: ClientAdapter{
			HTTPAddress: cfg.Adapter.HTTPAddress,
			ProbeURL:    probeURL,
			SyncTimeout: cfg.Adapter.SyncTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ForegroundInterval: cfg.Workers.ForegroundInterval,
			BackgroundInterval: cfg.Workers.BackgroundInterval,
			Background:         cfg.Workers.Background,
		},
		Sync: ClientSync{
			BatchSize:             cfg.Sync.BatchSize,
			MaxQueueSize:          cfg.Sync.MaxQueueSize,
			QueueWarningThreshold: cfg.Sync.QueueWarningThreshold,
			QueueCleanupThreshold: cfg.Sync.QueueCleanupThreshold,
			QueueItemTTL:          cfg.Sync.QueueItemTTL,
			RetryBaseDelay:        cfg.Sync.RetryBaseDelay,
			RetryMaxDelay:         cfg.Sync.RetryMaxDelay,
			RetryBackoffFactor:    cfg.Sync.RetryBackoffFactor,
			MaxRetryCount:         cfg.Sync.MaxRetryCount,
			DefaultStrategy:       cfg.Sync.DefaultStrategy,
			Strategies:            cfg.Sync.Strategies,
			LogRetention:          cfg.Sync.LogRetention,
		},
		Network: ClientNetwork{
			ProbeInterval:      cfg.Network.ProbeInterval,
			ProbeTimeout:       cfg.Network.ProbeTimeout,
			StabilizationDelay: cfg.Network.StabilizationDelay,
			ProbeOnly:          cfg.Network.ProbeOnly,
		},
		Log: ClientLog{
			File:       cfg.Log.File,
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		},
	}
}
