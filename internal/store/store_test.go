// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestStorages opens a migrated SQLite file in a temp dir.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	db, err := NewConnectSQLite(testContext(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "replica.db"),
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return NewClientStoragesFromDB(db, logger.Nop())
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDBFromSQL(conn), mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(conn *sql.DB) *DB {
	return NewDB(conn, logger.Nop())
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecord(localID string, collection models.Collection, status models.SyncStatus, fields models.Fields) models.Record {
	return models.Record{
		LocalID:      localID,
		Collection:   collection,
		SyncStatus:   status,
		LastModified: baseTime,
		Fields:       fields,
		CreatedAt:    baseTime,
	}
}
