// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PullRequest asks the server for changes made after LastPulledAt.
type PullRequest struct {
	// LastPulledAt is the cursor returned by the previous pull, 0 on first sync.
	LastPulledAt  int64 `json:"lastPulledAt"`
	SchemaVersion int   `json:"schemaVersion"`
	Limit         int   `json:"limit,omitempty"`
}

// PullResponse carries one batch of server changes.
type PullResponse struct {
	Changes   ChangeSet `json:"changes"`
	Timestamp int64     `json:"timestamp"`
	HasMore   bool      `json:"hasMore"`
}

// PushRequest submits one batch of local changes.
type PushRequest struct {
	Changes      ChangeSet `json:"changes"`
	LastPulledAt int64     `json:"lastPulledAt"`
}

// PushAccepted acknowledges a single pushed record.
type PushAccepted struct {
	Collection Collection `json:"collection"`
	LocalID    string     `json:"localId"`
	ServerID   string     `json:"serverId"`
	UpdatedAt  int64      `json:"updatedAt,omitempty"`
}

// PushRejected reports a record-level validation failure.
type PushRejected struct {
	Collection Collection `json:"collection"`
	LocalID    string     `json:"localId"`
	Reason     string     `json:"reason"`
}

// PushConflict reports that the server holds a divergent version of a pushed
// record.
type PushConflict struct {
	Collection Collection   `json:"collection"`
	LocalID    string       `json:"localId"`
	ServerData ChangeRecord `json:"serverData"`
}

// PushResponse carries the three outcome classes of a push batch. Accepted is
// in server acknowledgement order.
type PushResponse struct {
	Accepted  []PushAccepted `json:"accepted"`
	Rejected  []PushRejected `json:"rejected"`
	Conflicts []PushConflict `json:"conflicts"`
}
