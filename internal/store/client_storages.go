// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
)

// ClientStorages groups the repositories of the local replica. All of them
// share one SQLite connection, so a [Transactor] transaction spans every
// repository.
type ClientStorages struct {
	DB            *DB
	Transactor    Transactor
	Records       RecordRepository
	SyncState     SyncStateRepository
	SyncLogs      SyncLogRepository
	Conflicts     ConflictRepository
	QueueEvents   QueueEventRepository
	NetworkEvents NetworkEventRepository
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it
// when missing), runs pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires repositories over an already migrated DB.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:            db,
		Transactor:    db,
		Records:       NewRecordRepository(db, logger),
		SyncState:     NewSyncStateRepository(db, logger),
		SyncLogs:      NewSyncLogRepository(db, logger),
		Conflicts:     NewConflictRepository(db, logger),
		QueueEvents:   NewQueueEventRepository(db, logger),
		NetworkEvents: NewNetworkEventRepository(db, logger),
	}
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
