// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/resto-sync/models"
)

// validate checks invariants shared by every role. Role specific checks live
// in the views built from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.RetryBackoffFactor < 0 {
		return fmt.Errorf("%w: negative backoff factor", ErrInvalidSyncConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.SyncTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ForegroundInterval <= 0 || cfg.Workers.BackgroundInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return cfg.Sync.validate()
}

func (s ClientSync) validate() error {
	if s.BatchSize <= 0 || s.MaxQueueSize <= 0 || s.MaxRetryCount <= 0 {
		return fmt.Errorf("%w: batch size, queue size and retry count must be positive", ErrInvalidSyncConfigs)
	}

	if s.QueueWarningThreshold > s.QueueCleanupThreshold || s.QueueCleanupThreshold > s.MaxQueueSize {
		return fmt.Errorf("%w: thresholds must satisfy warning <= cleanup <= max", ErrInvalidSyncConfigs)
	}

	if s.RetryBackoffFactor < 1 || s.RetryBaseDelay <= 0 || s.RetryMaxDelay < s.RetryBaseDelay {
		return fmt.Errorf("%w: invalid retry settings", ErrInvalidSyncConfigs)
	}

	if !models.Strategy(s.DefaultStrategy).IsValid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidSyncConfigs, s.DefaultStrategy)
	}

	for collection, strategy := range s.Strategies {
		if !models.Collection(collection).IsValid() {
			return fmt.Errorf("%w: unknown collection %q", ErrInvalidSyncConfigs, collection)
		}
		if !models.Strategy(strategy).IsValid() {
			return fmt.Errorf("%w: unknown strategy %q for %s", ErrInvalidSyncConfigs, strategy, collection)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
