// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Names come from the `env` and
// `envPrefix` tags, e.g. SYNC_BATCH_SIZE or NETWORK_PROBE_ONLY; unset
// variables leave zero values for the later layers to fill.
func parseEnv(cfg *StructuredConfig) error {
	parsed, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	*cfg = parsed
	return nil
}
