// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// NotificationLevel is the severity shown to the user.
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification is the single user-facing summary of a sync cycle that needs
// attention. It carries counts only.
type Notification struct {
	Level           NotificationLevel
	SyncLogID       int64
	Failed          bool
	Rejected        int
	ManualConflicts int
	At              time.Time
}

// Message renders the notification text.
func (n Notification) Message() string {
	var parts []string
	if n.Failed {
		parts = append(parts, "sync failed, changes are kept and will be retried")
	}
	if n.Rejected > 0 {
		parts = append(parts, fmt.Sprintf("%d change(s) rejected by the server", n.Rejected))
	}
	if n.ManualConflicts > 0 {
		parts = append(parts, fmt.Sprintf("%d conflict(s) need review", n.ManualConflicts))
	}
	if len(parts) == 0 {
		return "sync completed"
	}
	return strings.Join(parts, "; ")
}
