// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/service"
	"github.com/MKhiriev/resto-sync/internal/utils"
)

// Handler serves the pull/push sync contract over HTTP.
type Handler struct {
	services *service.Services

	// signer verifies request bodies and signs response bodies.
	// Nil when no hash key is configured.
	signer *utils.Signer

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		signer:         utils.NewSigner(cfg.HashKey),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
