// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"time"
)

// Prober measures round-trip latency to a URL. An empty url means the
// default probe target.
type Prober interface {
	Probe(ctx context.Context, url string) (time.Duration, error)
}
