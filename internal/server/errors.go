// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no transport has
	// an address configured.
	errNoServersAreCreated = errors.New("sync server has no listener configured")
	// errNoServersToRun is returned by RunServer on an empty server.
	errNoServersToRun = errors.New("sync server has nothing to run")
)
