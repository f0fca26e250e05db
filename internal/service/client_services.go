// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
)

type ClientServices struct {
	Queue        SyncQueue
	Resolver     ConflictResolver
	Recovery     Recovery
	Orchestrator SyncOrchestrator
	SyncJob      ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, syncAdapter adapter.SyncAdapter, monitor NetworkMonitor, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	resolver, err := NewConflictResolver(storages.Records, cfg.Sync, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating conflict resolver: %w", err)
	}

	var refresher CredentialRefresher
	if cfg.App.TokenFile != "" {
		refresher = adapter.NewTokenFileRefresher(cfg.App.TokenFile, syncAdapter)
	}

	queue := NewSyncQueue(storages, cfg.Sync, logger)
	recovery := NewRecoveryService(cfg.Sync, refresher, monitor, logger)
	orchestrator := NewSyncOrchestrator(OrchestratorDeps{
		Storages: storages,
		Queue:    queue,
		Resolver: resolver,
		Recovery: recovery,
		Adapter:  syncAdapter,
		Monitor:  monitor,
	}, cfg, logger)

	return &ClientServices{
		Queue:        queue,
		Resolver:     resolver,
		Recovery:     recovery,
		Orchestrator: orchestrator,
		SyncJob:      NewClientSyncJob(orchestrator),
	}, nil
}
