// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/resto-sync/models"
)

const testHashKey = "test-secret-key"

func TestSigner_SumMatchesHMAC(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte("test-data")

	sum1 := s.Sum(data)
	sum2 := s.Sum(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestSigner_SignAndVerifyPullRequest(t *testing.T) {
	s := NewSigner(testHashKey)

	// Сериализуем запрос так же, как это делает адаптер
	body, err := json.Marshal(models.PullRequest{LastPulledAt: 1700000000000, SchemaVersion: 1, Limit: 50})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	signature := s.Sign(body)
	if signature != HashString(string(body), testHashKey) {
		t.Fatalf("Sign and HashString disagree: %s", signature)
	}
	if !s.Verify(body, signature) {
		t.Fatal("signature must verify")
	}

	tampered := append([]byte(nil), body...)
	tampered[len(tampered)-2] = '9'
	if s.Verify(tampered, signature) {
		t.Fatal("tampered body must not verify")
	}
}

func TestSigner_VerifyRejectsGarbage(t *testing.T) {
	s := NewSigner(testHashKey)
	if s.Verify([]byte("x"), "not-hex") {
		t.Fatal("non-hex signature must not verify")
	}
	if s.Verify([]byte("x"), hex.EncodeToString([]byte("short"))) {
		t.Fatal("wrong signature must not verify")
	}
}

func TestSigner_NilDisabled(t *testing.T) {
	s := NewSigner("")
	if s.Enabled() {
		t.Fatal("empty key must produce a disabled signer")
	}
	if got := s.Sign([]byte("data")); got != "" {
		t.Fatalf("disabled signer must not sign, got %q", got)
	}
	if !s.Verify([]byte("data"), "anything") {
		t.Fatal("disabled signer must accept everything")
	}
}

func TestSigner_DifferentKeysIndependent(t *testing.T) {
	a := NewSigner("key-a")
	b := NewSigner("key-b")

	data := []byte("payload")
	if a.Sign(data) == b.Sign(data) {
		t.Fatal("signers with different keys must produce different digests")
	}
}

func TestSigner_Concurrent(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte("concurrent")
	want := s.Sign(data)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Sign(data); got != want {
				t.Errorf("concurrent sign mismatch: %s", got)
			}
		}()
	}
	wg.Wait()
}
