// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/resto-sync/models"
)

func TestQualityFor(t *testing.T) {
	ms := time.Millisecond

	tests := []struct {
		name     string
		connType models.ConnectionType
		latency  time.Duration
		want     models.Quality
	}{
		{"wifi excellent", models.ConnectionWiFi, 40 * ms, models.QualityExcellent},
		{"wifi boundary is good", models.ConnectionWiFi, 100 * ms, models.QualityGood},
		{"ethernet fair", models.ConnectionEthernet, 500 * ms, models.QualityFair},
		{"wifi poor", models.ConnectionWiFi, 1200 * ms, models.QualityPoor},
		{"cellular excellent", models.ConnectionCellular, 150 * ms, models.QualityExcellent},
		{"cellular good", models.ConnectionCellular, 400 * ms, models.QualityGood},
		{"cellular fair", models.ConnectionCellular, 1200 * ms, models.QualityFair},
		{"cellular poor", models.ConnectionCellular, 1500 * ms, models.QualityPoor},
		{"unknown uses mobile buckets", models.ConnectionUnknown, 250 * ms, models.QualityGood},
		{"none", models.ConnectionNone, 10 * ms, models.QualityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualityFor(tt.connType, tt.latency))
		})
	}
}
