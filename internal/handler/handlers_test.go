// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ServerConfig
		wantErr  error
		wantHTTP bool
	}{
		{
			name:     "http address",
			cfg:      config.ServerConfig{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "http address with hash key",
			cfg:      config.ServerConfig{HTTPAddress: "localhost:8080", HashKey: "k"},
			wantHTTP: true,
		},
		{
			name:    "no address",
			cfg:     config.ServerConfig{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
		})
	}
}

func TestNewHandlers_RouterBuilds(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerConfig{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
