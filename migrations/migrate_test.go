// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "replica.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// повторный запуск ничего не ломает
	require.NoError(t, Migrate(db))

	for _, table := range []string{"records", "sync_state", "sync_logs", "conflicts", "queue_events", "network_events"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`UPDATE records SET base_fields = '{}' WHERE 0`)
	assert.NoError(t, err, "records carry the acknowledged server version")
}

func TestMigrate_SyncedRequiresServerID(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "replica.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO records (local_id, collection, sync_status, last_modified, created_at) VALUES ('a', 'orders', 'synced', 1, 1)`)
	require.Error(t, err)

	_, err = db.Exec(`INSERT INTO records (local_id, collection, server_id, sync_status, last_modified, created_at) VALUES ('b', 'orders', 's-1', 'synced', 1, 1)`)
	require.NoError(t, err)
}
