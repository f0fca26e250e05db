// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Strategy is a conflict resolution policy.
type Strategy string

const (
	StrategyServerWins    Strategy = "server_wins"
	StrategyClientWins    Strategy = "client_wins"
	StrategyLastWriteWins Strategy = "last_write_wins"
	StrategyManual        Strategy = "manual"
	StrategyMerge         Strategy = "merge"
)

// IsValid reports whether s is a known strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyServerWins, StrategyClientWins, StrategyLastWriteWins, StrategyManual, StrategyMerge:
		return true
	}
	return false
}

// Conflict pairs a local record carrying unsynced intent with the incoming
// server version of the same entity.
type Conflict struct {
	Collection Collection
	Local      Record
	Server     ChangeRecord
}

// Outcome is what applying a resolution does to the local record.
type Outcome string

const (
	// OutcomeServer adopts the server version; the record becomes synced.
	OutcomeServer Outcome = "server"
	// OutcomeDelete physically removes the local record.
	OutcomeDelete Outcome = "delete"
	// OutcomeLocal keeps local fields; the record stays pending for the next push.
	OutcomeLocal Outcome = "local"
	// OutcomeMerged stores merged fields; the record stays pending.
	OutcomeMerged Outcome = "merged"
	// OutcomeManual persists an open conflict; local data is untouched.
	OutcomeManual Outcome = "manual"
	// OutcomeSynced marks an identical local record synced.
	OutcomeSynced Outcome = "synced"
)

// Resolution is the result of resolving (or directly accepting) one server
// change. Record is the resulting local state for outcomes that write it.
type Resolution struct {
	Collection Collection
	Strategy   Strategy
	Outcome    Outcome
	Record     Record
	Server     ChangeRecord
	// HadLocal is false when no local record existed for the server change.
	HadLocal bool
	// BaseModified is the local LastModified the resolution was computed
	// from; zero without a local record.
	BaseModified time.Time
}

// DetectionResult splits server changes into conflicts and directly accepted
// changes.
type DetectionResult struct {
	Conflicts []Conflict
	Resolved  []Resolution
}

// ConflictReason says why a conflict row was opened.
type ConflictReason string

const (
	ConflictReasonManual   ConflictReason = "manual"
	ConflictReasonRejected ConflictReason = "rejected"
)

// OpenConflict is a persisted conflict awaiting operator action.
type OpenConflict struct {
	ID              int64          `json:"id"`
	LocalID         string         `json:"localId"`
	Collection      Collection     `json:"collection"`
	Reason          ConflictReason `json:"reason"`
	Detail          string         `json:"detail,omitempty"`
	ServerID        *string        `json:"serverId,omitempty"`
	ServerFields    Fields         `json:"serverFields,omitempty"`
	ServerUpdatedAt *time.Time     `json:"serverUpdatedAt,omitempty"`
	ServerDeleted   bool           `json:"serverDeleted,omitempty"`
	DetectedAt      time.Time      `json:"detectedAt"`
	ResolvedAt      *time.Time     `json:"resolvedAt,omitempty"`
}

// ManualChoice is the operator decision for an open conflict.
type ManualChoice string

const (
	KeepLocal  ManualChoice = "keep_local"
	KeepServer ManualChoice = "keep_server"
)

// IsValid reports whether c is a known choice.
func (c ManualChoice) IsValid() bool {
	return c == KeepLocal || c == KeepServer
}
