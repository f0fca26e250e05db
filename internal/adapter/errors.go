// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// HTTP status errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

// Transport errors.
var (
	// ErrTimeout is returned when a request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrUnreachable is returned when the server could not be connected to.
	ErrUnreachable = errors.New("server unreachable")

	// ErrDNS is returned when the server host name could not be resolved.
	ErrDNS = errors.New("dns resolution failed")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrInvalidSignature is returned when a signed response fails the
	// integrity check.
	ErrInvalidSignature = errors.New("response integrity check failed")

	// ErrNoToken is returned when a token file holds no token.
	ErrNoToken = errors.New("no device token available")
)
