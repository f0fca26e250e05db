// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
)

// authService issues and verifies device tokens for the reference server.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Empty disables authentication.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the server configuration.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  utils.TokenIssuer,
		logger:       logger,
	}
}

// Enabled reports whether requests must carry a device token.
func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

// CreateToken issues a signed JWT naming deviceID as its subject.
func (a *authService) CreateToken(ctx context.Context, deviceID string, ttl time.Duration) (string, error) {
	token, err := utils.GenerateDeviceToken(a.tokenIssuer, deviceID, ttl, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.CreateToken").
			Str("device", deviceID).
			Msg("failed to create device token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT and returns the device id it names. Any
// validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	deviceID, err := utils.ValidateDeviceToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "authService.ParseToken").
			Msg("device token rejected")
		return "", ErrTokenIsExpiredOrInvalid
	}

	return deviceID, nil
}
