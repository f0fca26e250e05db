// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/logger"
)

// CursorKey is the sync_state key holding the pull watermark.
const CursorKey = "last_pulled_at"

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored value, or an empty string when key was never set.
func (s *syncStateRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.conn(ctx).QueryRowContext(ctx, getStateQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.Get").
			Str("key", key).
			Msg("failed to read sync state")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (s *syncStateRepository) Set(ctx context.Context, key, value string) error {
	if _, err := s.conn(ctx).ExecContext(ctx, setStateQuery, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.Set").
			Str("key", key).
			Msg("failed to write sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
