// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateDeviceToken_Success(t *testing.T) {
	token, err := GenerateDeviceToken("test-issuer", "tablet-1", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("token must parse: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "tablet-1" {
		t.Errorf("expected subject tablet-1, got %s", claims.Subject)
	}
}

func TestGenerateDeviceToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		deviceID string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "d", time.Hour, "key"},
		{"empty device", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "d", 0, "key"},
		{"empty key", "iss", "d", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateDeviceToken(tt.issuer, tt.deviceID, tt.duration, tt.key); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateDeviceToken(t *testing.T) {
	token, err := GenerateDeviceToken(TokenIssuer, "tablet-2", time.Hour, "sign")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	deviceID, err := ValidateDeviceToken(token, "sign", TokenIssuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if deviceID != "tablet-2" {
		t.Errorf("expected tablet-2, got %s", deviceID)
	}

	if _, err := ValidateDeviceToken(token, "other-key", TokenIssuer); err == nil {
		t.Error("expected signature error")
	}
	if _, err := ValidateDeviceToken(token, "sign", "someone-else"); err == nil {
		t.Error("expected issuer error")
	}
}

func TestValidateDeviceToken_Expired(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "tablet-3",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("sign"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateDeviceToken(token, "sign", TokenIssuer); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}

func TestTokenExpiresWithin(t *testing.T) {
	now := time.Now()
	token, err := GenerateDeviceToken(TokenIssuer, "d", 10*time.Minute, "k")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if TokenExpiresWithin(token, now, time.Minute) {
		t.Error("token valid for 10m must not expire within 1m")
	}
	if !TokenExpiresWithin(token, now, 20*time.Minute) {
		t.Error("token valid for 10m must expire within 20m")
	}
	if !TokenExpiresWithin("garbage", now, 0) {
		t.Error("malformed token must be treated as expired")
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "d"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if TokenExpiresWithin(noExp, now, time.Hour) {
		t.Error("token without exp must not expire")
	}
}
