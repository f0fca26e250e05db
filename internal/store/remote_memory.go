// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

// RemoteRow is one record held by the reference sync server.
type RemoteRow struct {
	Collection models.Collection
	ID         string
	// LocalID is the id the creating device used.
	LocalID string
	// OriginDevice created the row.
	OriginDevice string
	// LastWriter is the device of the latest accepted write.
	LastWriter string
	// CreatedAt and UpdatedAt are server clock values in unix milliseconds.
	CreatedAt int64
	UpdatedAt int64
	Deleted   bool
	Fields    models.Fields
}

// Change renders the row in wire form.
func (r RemoteRow) Change() models.ChangeRecord {
	return models.ChangeRecord{
		ID:        r.ID,
		LocalID:   r.LocalID,
		UpdatedAt: r.UpdatedAt,
		Deleted:   r.Deleted,
		Fields:    r.Fields.Clone(),
	}
}

// RemoteChanges is a page of rows changed after a watermark.
type RemoteChanges struct {
	Rows      []RemoteRow
	Timestamp int64
	HasMore   bool
}

type remoteKey struct {
	collection models.Collection
	id         string
}

type originKey struct {
	collection models.Collection
	device     string
	localID    string
}

// memoryRemoteRepository keeps server rows in memory. Every write receives a
// unique, strictly increasing millisecond stamp so watermarks never skip or
// repeat a row.
type memoryRemoteRepository struct {
	mu       sync.RWMutex
	rows     map[remoteKey]RemoteRow
	byOrigin map[originKey]string
	last     int64
	clock    func() time.Time
	logger   *logger.Logger
}

func NewMemoryRemoteRepository(logger *logger.Logger) RemoteRepository {
	return newMemoryRemoteRepository(time.Now, logger)
}

func newMemoryRemoteRepository(clock func() time.Time, logger *logger.Logger) *memoryRemoteRepository {
	return &memoryRemoteRepository{
		rows:     make(map[remoteKey]RemoteRow),
		byOrigin: make(map[originKey]string),
		clock:    clock,
		logger:   logger,
	}
}

func (m *memoryRemoteRepository) tick() int64 {
	now := m.clock().UnixMilli()
	if now <= m.last {
		now = m.last + 1
	}
	m.last = now
	return now
}

func (m *memoryRemoteRepository) Get(_ context.Context, collection models.Collection, id string) (RemoteRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[remoteKey{collection, id}]
	if !ok {
		return RemoteRow{}, ErrRemoteRecordNotFound
	}
	row.Fields = row.Fields.Clone()
	return row, nil
}

func (m *memoryRemoteRepository) FindByOrigin(_ context.Context, collection models.Collection, device, localID string) (RemoteRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byOrigin[originKey{collection, device, localID}]
	if !ok {
		return RemoteRow{}, ErrRemoteRecordNotFound
	}
	row := m.rows[remoteKey{collection, id}]
	row.Fields = row.Fields.Clone()
	return row, nil
}

// Save stores row and returns it with server stamps applied.
func (m *memoryRemoteRepository) Save(ctx context.Context, row RemoteRow) (RemoteRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := remoteKey{row.Collection, row.ID}
	stamp := m.tick()

	if existing, ok := m.rows[key]; ok {
		row.CreatedAt = existing.CreatedAt
		row.OriginDevice = existing.OriginDevice
		row.LocalID = existing.LocalID
	} else {
		row.CreatedAt = stamp
		if row.OriginDevice != "" && row.LocalID != "" {
			m.byOrigin[originKey{row.Collection, row.OriginDevice, row.LocalID}] = row.ID
		}
	}
	row.UpdatedAt = stamp
	row.Fields = row.Fields.Clone()
	m.rows[key] = row

	logger.FromContext(ctx).Debug().
		Str("func", "memoryRemoteRepository.Save").
		Str("collection", string(row.Collection)).
		Str("id", row.ID).
		Int64("updated_at", stamp).
		Msg("remote row saved")

	return row, nil
}

// ChangesSince pages rows with UpdatedAt > since in stamp order.
func (m *memoryRemoteRepository) ChangesSince(_ context.Context, since int64, limit int) (RemoteChanges, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var rows []RemoteRow
	for _, row := range m.rows {
		if row.UpdatedAt > since {
			row.Fields = row.Fields.Clone()
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UpdatedAt < rows[j].UpdatedAt })

	result := RemoteChanges{Timestamp: max(since, m.last)}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		result.HasMore = true
		result.Timestamp = rows[len(rows)-1].UpdatedAt
	}
	result.Rows = rows

	return result, nil
}

// Now returns the latest issued stamp.
func (m *memoryRemoteRepository) Now() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}
