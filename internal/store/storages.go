// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/resto-sync/internal/logger"

// Storages groups the storage of the reference sync server.
type Storages struct {
	Remote RemoteRepository
}

func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating in-memory remote storage...")

	return &Storages{
		Remote: NewMemoryRemoteRepository(logger),
	}
}
