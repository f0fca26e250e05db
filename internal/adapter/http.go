// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/models"
)

const (
	pullPath   = "/api/sync/pull"
	pushPath   = "/api/sync/push"
	healthPath = "/api/health"

	// tokenRefreshWindow is how long before expiry the token file is re-read.
	tokenRefreshWindow = 30 * time.Second
)

type httpSyncAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer
	ids    utils.IDGenerator

	probeURL  string
	tokenFile string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncAdapter constructs an HTTP/REST implementation of [SyncAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and the
// sync timeout, and loads the bearer token from appCfg.TokenFile when one is
// configured.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSyncAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (SyncAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	probeURL := adapterCfg.ProbeURL
	if probeURL == "" {
		probeURL = baseURL + healthPath
	}

	a := &httpSyncAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.SyncTimeout),
		signer:    utils.NewSigner(appCfg.HashKey),
		ids:       utils.NewUUIDGenerator(),
		probeURL:  probeURL,
		tokenFile: appCfg.TokenFile,
		logger:    logger,
	}

	if a.tokenFile != "" {
		token, err := readTokenFile(a.tokenFile)
		if err != nil {
			logger.Warn().Err(err).
				Str("func", "NewHTTPSyncAdapter").
				Str("token_file", a.tokenFile).
				Msg("device token not loaded")
		} else {
			a.SetToken(token)
		}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SyncAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpSyncAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncAdapter].
func (h *httpSyncAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Pull implements [SyncAdapter]. It POSTs req to POST /api/sync/pull and
// decodes the change set.
func (h *httpSyncAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	var resp models.PullResponse
	if err := h.post(ctx, pullPath, req, &resp); err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if resp.Changes == nil {
		resp.Changes = models.ChangeSet{}
	}
	return resp, nil
}

// Push implements [SyncAdapter]. It POSTs req to POST /api/sync/push and
// decodes the accepted, rejected and conflicting outcomes.
func (h *httpSyncAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	var resp models.PushResponse
	if err := h.post(ctx, pushPath, req, &resp); err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	return resp, nil
}

// Probe implements [SyncAdapter]. Any response below 500 counts as reachable.
func (h *httpSyncAdapter) Probe(ctx context.Context, target string) (time.Duration, error) {
	if target == "" {
		target = h.probeURL
	}

	started := time.Now()
	resp, err := h.client.R().SetContext(ctx).Head(target)
	latency := time.Since(started)
	if err != nil {
		return 0, mapTransportError(err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return 0, mapHTTPError(resp)
	}

	return latency, nil
}

func (h *httpSyncAdapter) post(ctx context.Context, path string, body, out any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.signer.Enabled() {
		req.SetHeader(utils.HashHeader, h.signer.Sign(payload))
	}

	resp, err := req.Post(path)
	if err != nil {
		log.Err(err).Str("func", "httpSyncAdapter.post").Str("path", path).Msg("request failed")
		return mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "httpSyncAdapter.post").Str("path", path).Int("status", resp.StatusCode()).Msg("server returned an error")
		return err
	}

	if h.signer.Enabled() {
		signature := resp.Header().Get(utils.HashHeader)
		if signature == "" || !h.signer.Verify(resp.Body(), signature) {
			log.Error().Str("func", "httpSyncAdapter.post").Str("path", path).Bool("signed", signature != "").Msg("response signature rejected")
			return ErrInvalidSignature
		}
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}

func (h *httpSyncAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.refreshTokenIfExpiring(ctx)

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// refreshTokenIfExpiring re-reads the token file when the current token is
// about to expire. Failures leave the old token in place; the server answers
// 401 and recovery asks for a refresh.
func (h *httpSyncAdapter) refreshTokenIfExpiring(ctx context.Context) {
	if h.tokenFile == "" {
		return
	}
	current := h.Token()
	if current != "" && !utils.TokenExpiresWithin(current, time.Now(), tokenRefreshWindow) {
		return
	}

	token, err := readTokenFile(h.tokenFile)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpSyncAdapter.refreshTokenIfExpiring").
			Msg("token file not readable")
		return
	}
	h.SetToken(token)
}
