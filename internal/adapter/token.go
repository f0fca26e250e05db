// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
)

func readTokenFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// TokenFileRefresher reloads the device token from a file. The
// authentication flow that writes the file lives outside the sync engine.
type TokenFileRefresher struct {
	path    string
	adapter SyncAdapter
}

func NewTokenFileRefresher(path string, adapter SyncAdapter) *TokenFileRefresher {
	return &TokenFileRefresher{path: path, adapter: adapter}
}

// Refresh installs the token found in the file. It fails when the file is
// missing, empty or holds an expired token.
func (r *TokenFileRefresher) Refresh(ctx context.Context) error {
	if r.path == "" {
		return ErrNoToken
	}

	token, err := readTokenFile(r.path)
	if err != nil {
		return err
	}
	if utils.TokenExpiresWithin(token, time.Now(), 0) {
		return fmt.Errorf("%w: token in %s is expired", ErrUnauthorized, r.path)
	}

	r.adapter.SetToken(token)
	logger.FromContext(ctx).Info().
		Str("func", "TokenFileRefresher.Refresh").
		Msg("device token reloaded")

	return nil
}
