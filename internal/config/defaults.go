// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default tunables of the sync engine.
const (
	DefaultBatchSize             = 50
	DefaultMaxQueueSize          = 1000
	DefaultQueueWarningThreshold = 500
	DefaultQueueCleanupThreshold = 800
	DefaultQueueItemTTL          = 72 * time.Hour

	DefaultRetryBaseDelay     = time.Second
	DefaultRetryMaxDelay      = 30 * time.Second
	DefaultRetryBackoffFactor = 2.0
	DefaultMaxRetryCount      = 5

	DefaultSyncTimeout        = 30 * time.Second
	DefaultForegroundInterval = 5 * time.Minute
	DefaultBackgroundInterval = 15 * time.Minute

	DefaultProbeInterval      = 30 * time.Second
	DefaultProbeTimeout       = 5 * time.Second
	DefaultStabilizationDelay = 3 * time.Second

	DefaultStrategy     = "last_write_wins"
	DefaultLogRetention = 200
)

// defaultConfig returns the lowest priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SchemaVersion: 1,
		},
		Storage: Storage{
			DB: DB{DSN: "resto-sync.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: DefaultSyncTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: "http://localhost:8080",
			SyncTimeout: DefaultSyncTimeout,
		},
		Workers: Workers{
			ForegroundInterval: DefaultForegroundInterval,
			BackgroundInterval: DefaultBackgroundInterval,
		},
		Sync: Sync{
			BatchSize:             DefaultBatchSize,
			MaxQueueSize:          DefaultMaxQueueSize,
			QueueWarningThreshold: DefaultQueueWarningThreshold,
			QueueCleanupThreshold: DefaultQueueCleanupThreshold,
			QueueItemTTL:          DefaultQueueItemTTL,
			RetryBaseDelay:        DefaultRetryBaseDelay,
			RetryMaxDelay:         DefaultRetryMaxDelay,
			RetryBackoffFactor:    DefaultRetryBackoffFactor,
			MaxRetryCount:         DefaultMaxRetryCount,
			DefaultStrategy:       DefaultStrategy,
			LogRetention:          DefaultLogRetention,
		},
		Network: Network{
			ProbeInterval:      DefaultProbeInterval,
			ProbeTimeout:       DefaultProbeTimeout,
			StabilizationDelay: DefaultStabilizationDelay,
		},
		Log: Log{
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
