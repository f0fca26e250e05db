// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes keyed HMAC-SHA256 signatures of request and response
// bodies (the HashSHA256 header). Hash instances are pooled per signer.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a signer for hashKey, or nil when hashKey is empty.
// A nil *Signer is valid and signs nothing.
func NewSigner(hashKey string) *Signer {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether the signer has a key.
func (s *Signer) Enabled() bool {
	return s != nil
}

// Sum computes the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded digest of data, or "" for a nil signer.
func (s *Signer) Sign(data []byte) string {
	if s == nil {
		return ""
	}
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex digest of data. A nil signer
// accepts everything.
func (s *Signer) Verify(data []byte, signature string) bool {
	if s == nil {
		return true
	}

	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(decoded, s.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
// It does not use a pool and suits one-off hashing.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
