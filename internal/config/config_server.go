// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view of the reference sync server.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	HashKey        string
	// TokenSignKey verifies device tokens; empty disables authentication.
	TokenSignKey string
	Version      string
}

// GetServerConfig builds and validates the reference server configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		HashKey:        cfg.App.HashKey,
		TokenSignKey:   cfg.App.TokenSignKey,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
