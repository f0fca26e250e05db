// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

// qualityThresholds are the upper latency bounds for excellent, good and
// fair links.
type qualityThresholds [3]time.Duration

var (
	wiredThresholds  = qualityThresholds{100 * time.Millisecond, 300 * time.Millisecond, 1000 * time.Millisecond}
	mobileThresholds = qualityThresholds{200 * time.Millisecond, 600 * time.Millisecond, 1500 * time.Millisecond}
)

// QualityFor buckets a probe latency. Cellular and unknown links get more
// headroom than wifi and ethernet.
func QualityFor(connType models.ConnectionType, latency time.Duration) models.Quality {
	thresholds := mobileThresholds
	switch connType {
	case models.ConnectionWiFi, models.ConnectionEthernet:
		thresholds = wiredThresholds
	case models.ConnectionNone:
		return models.QualityNone
	}

	switch {
	case latency < thresholds[0]:
		return models.QualityExcellent
	case latency < thresholds[1]:
		return models.QualityGood
	case latency < thresholds[2]:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}
