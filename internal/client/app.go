// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/network"
	"github.com/MKhiriev/resto-sync/internal/service"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/internal/workers"
	"github.com/MKhiriev/resto-sync/models"
)

// App owns the client process: local storage, the sync adapter, the network
// monitor and the sync services built on top of them.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	monitor  *network.Monitor
	services *service.ClientServices
	logger   *logger.Logger
}

// Status is the operator view of the engine.
type Status struct {
	State         models.SyncState    `json:"state"`
	Network       models.NetworkState `json:"network"`
	Queue         models.QueueStats   `json:"queue"`
	LastSync      *models.SyncLog     `json:"lastSync,omitempty"`
	OpenConflicts int                 `json:"openConflicts"`
	Offline       time.Duration       `json:"offlineFor,omitempty"`
}

// NewApp opens the local database and the sync adapter described by cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	syncAdapter, err := adapter.NewHTTPSyncAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create sync adapter: %w", err)
	}

	app, err := newApp(storages, syncAdapter, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	return app, nil
}

func newApp(storages *store.ClientStorages, syncAdapter adapter.SyncAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	monitor := network.NewMonitor(cfg.Network, syncAdapter, storages.NetworkEvents, logger)

	services, err := service.NewClientServices(storages, syncAdapter, monitor, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		monitor:  monitor,
		services: services,
		logger:   logger,
	}, nil
}

// Run keeps the engine alive until ctx ends: the monitor probes, reconnects
// and queue pressure start syncs, and the periodic job ticks.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	unsubscribe := a.services.Orchestrator.OnNotification(a.logNotification)
	defer unsubscribe()

	trigger := models.TriggerForeground
	if a.cfg.Workers.Background {
		trigger = models.TriggerBackground
	}

	a.logger.Info().
		Str("server", a.cfg.Adapter.HTTPAddress).
		Str("trigger", string(trigger)).
		Dur("interval", a.cfg.Workers.SyncInterval()).
		Bool("probe_only", a.cfg.Network.ProbeOnly).
		Msg("sync engine started")

	return workers.NewWorkers(
		workers.NewServiceWorker(&engine{app: a}),
		workers.NewSyncJobWorker(a.services.SyncJob, trigger, a.cfg.Workers.SyncInterval()),
	).Run(ctx)
}

// SyncNow runs one cycle in the foreground.
func (a *App) SyncNow(ctx context.Context, opts models.SyncOptions) (models.SyncLog, error) {
	ctx = a.logger.WithContext(ctx)
	a.refreshLink(ctx)

	if opts.Trigger == "" {
		opts.Trigger = models.TriggerManual
	}
	return a.services.Orchestrator.Sync(ctx, opts)
}

// Status collects the engine state. The network part reflects a fresh probe.
func (a *App) Status(ctx context.Context) (Status, error) {
	ctx = a.logger.WithContext(ctx)
	a.refreshLink(ctx)

	stats, err := a.services.Queue.Stats(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("queue stats: %w", err)
	}

	conflicts, err := a.services.Orchestrator.ListConflicts(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("list conflicts: %w", err)
	}

	status := Status{
		State:         a.services.Orchestrator.State(),
		Network:       a.monitor.GetState(),
		Queue:         stats,
		OpenConflicts: len(conflicts),
		Offline:       a.monitor.OfflineDuration(),
	}

	last, err := a.services.Orchestrator.LastSuccessfulSync(ctx)
	switch {
	case err == nil:
		status.LastSync = &last
	case errors.Is(err, store.ErrSyncLogNotFound):
	default:
		return Status{}, fmt.Errorf("last sync: %w", err)
	}

	return status, nil
}

// History returns the newest sync logs first.
func (a *App) History(ctx context.Context, limit uint64) ([]models.SyncLog, error) {
	return a.services.Orchestrator.History(a.logger.WithContext(ctx), limit)
}

// NetworkHistory returns the newest persisted network events first.
func (a *App) NetworkHistory(ctx context.Context, limit uint64) ([]models.NetworkEvent, error) {
	return a.monitor.History(a.logger.WithContext(ctx), limit)
}

// Conflicts lists the conflicts waiting for the operator.
func (a *App) Conflicts(ctx context.Context) ([]models.OpenConflict, error) {
	return a.services.Orchestrator.ListConflicts(a.logger.WithContext(ctx))
}

// Resolve settles an open conflict.
func (a *App) Resolve(ctx context.Context, localID string, choice models.ManualChoice) error {
	return a.services.Orchestrator.ResolveManual(a.logger.WithContext(ctx), localID, choice)
}

// Enqueue stores local mutations for the next push.
func (a *App) Enqueue(ctx context.Context, records ...models.Record) ([]models.Record, error) {
	return a.services.Queue.Enqueue(a.logger.WithContext(ctx), records...)
}

// Close releases the local database.
func (a *App) Close() error {
	return a.storages.Close()
}

// refreshLink reports the link as up and probes the server. A terminal has
// no platform connectivity source, so reachability comes from the probe.
func (a *App) refreshLink(ctx context.Context) {
	if !a.cfg.Network.ProbeOnly {
		a.monitor.SetConnectivity(ctx, true, models.ConnectionUnknown)
	}
	a.monitor.TestConnectivity(ctx, "")
}

func (a *App) logNotification(n models.Notification) {
	event := a.logger.Info()
	switch n.Level {
	case models.NotificationWarning:
		event = a.logger.Warn()
	case models.NotificationError:
		event = a.logger.Error()
	}
	event.
		Int64("sync_log_id", n.SyncLogID).
		Int("rejected", n.Rejected).
		Int("manual_conflicts", n.ManualConflicts).
		Msg(n.Message())
}

// engine starts the monitor before the orchestrator subscribes to it and
// reports the link only once both are listening.
type engine struct {
	app *App
}

func (e *engine) Start(ctx context.Context) {
	e.app.monitor.Start(ctx)
	e.app.services.Orchestrator.Start(ctx)
	if !e.app.cfg.Network.ProbeOnly {
		e.app.monitor.SetConnectivity(ctx, true, models.ConnectionUnknown)
	}
}

func (e *engine) Stop() {
	e.app.services.Orchestrator.Stop()
	e.app.monitor.Stop()
}
