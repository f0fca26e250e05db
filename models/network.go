// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// ConnectionType is the physical link type reported by the platform.
type ConnectionType string

const (
	ConnectionNone     ConnectionType = "none"
	ConnectionWiFi     ConnectionType = "wifi"
	ConnectionEthernet ConnectionType = "ethernet"
	ConnectionCellular ConnectionType = "cellular"
	ConnectionUnknown  ConnectionType = "unknown"
)

// Quality is the latency bucket of a connection.
type Quality string

const (
	QualityNone      Quality = "none"
	QualityPoor      Quality = "poor"
	QualityFair      Quality = "fair"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

// NetworkState is the current connectivity snapshot.
type NetworkState struct {
	Connected bool           `json:"connected"`
	Reachable bool           `json:"reachable"`
	Type      ConnectionType `json:"type"`
	Quality   Quality        `json:"quality"`
	Latency   time.Duration  `json:"latency"`
	Since     time.Time      `json:"since"`
}

// Online reports whether the device is connected and the server answered the
// last probe.
func (s NetworkState) Online() bool {
	return s.Connected && s.Reachable
}

// NetworkEventType names a network monitor event.
type NetworkEventType string

const (
	EventStateChange      NetworkEventType = "stateChange"
	EventReconnected      NetworkEventType = "reconnected"
	EventDisconnected     NetworkEventType = "disconnected"
	EventTypeChanged      NetworkEventType = "typeChanged"
	EventQualityChange    NetworkEventType = "qualityChange"
	EventStableConnection NetworkEventType = "stableConnection"
)

// NetworkEvent is delivered to subscribers and persisted as history.
type NetworkEvent struct {
	ID       int64            `json:"id"`
	Type     NetworkEventType `json:"event"`
	State    NetworkState     `json:"state"`
	Previous NetworkState     `json:"-"`
	At       time.Time        `json:"at"`
}
