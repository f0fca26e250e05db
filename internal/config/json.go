// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		HashKey       string `json:"hash_key"`
		TokenFile     string `json:"token_file"`
		TokenSignKey  string `json:"token_sign_key"`
		SchemaVersion int    `json:"schema_version"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress string   `json:"http_address"`
		ProbeURL    string   `json:"probe_url"`
		SyncTimeout Duration `json:"sync_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ForegroundInterval Duration `json:"foreground_interval"`
		BackgroundInterval Duration `json:"background_interval"`
		Background         bool     `json:"background"`
	} `json:"workers,omitempty"`

	Sync struct {
		BatchSize             int               `json:"batch_size"`
		MaxQueueSize          int               `json:"max_queue_size"`
		QueueWarningThreshold int               `json:"queue_warning_threshold"`
		QueueCleanupThreshold int               `json:"queue_cleanup_threshold"`
		QueueItemTTL          Duration          `json:"queue_item_ttl"`
		RetryBaseDelay        Duration          `json:"retry_base_delay"`
		RetryMaxDelay         Duration          `json:"retry_max_delay"`
		RetryBackoffFactor    float64           `json:"retry_backoff_factor"`
		MaxRetryCount         int               `json:"max_retry_count"`
		DefaultStrategy       string            `json:"default_strategy"`
		Strategies            map[string]string `json:"strategies"`
		LogRetention          int               `json:"log_retention"`
	} `json:"sync,omitempty"`

	Network struct {
		ProbeInterval      Duration `json:"probe_interval"`
		ProbeTimeout       Duration `json:"probe_timeout"`
		StabilizationDelay Duration `json:"stabilization_delay"`
		ProbeOnly          bool     `json:"probe_only"`
	} `json:"network,omitempty"`

	Log struct {
		File       string `json:"file"`
		Level      string `json:"level"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
		Compress   bool   `json:"compress"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:       j.App.HashKey,
			TokenFile:     j.App.TokenFile,
			TokenSignKey:  j.App.TokenSignKey,
			SchemaVersion: j.App.SchemaVersion,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress: j.Adapter.HTTPAddress,
			ProbeURL:    j.Adapter.ProbeURL,
			SyncTimeout: time.Duration(j.Adapter.SyncTimeout),
		},
		Workers: Workers{
			ForegroundInterval: time.Duration(j.Workers.ForegroundInterval),
			BackgroundInterval: time.Duration(j.Workers.BackgroundInterval),
			Background:         j.Workers.Background,
		},
		Sync: Sync{
			BatchSize:             j.Sync.BatchSize,
			MaxQueueSize:          j.Sync.MaxQueueSize,
			QueueWarningThreshold: j.Sync.QueueWarningThreshold,
			QueueCleanupThreshold: j.Sync.QueueCleanupThreshold,
			QueueItemTTL:          time.Duration(j.Sync.QueueItemTTL),
			RetryBaseDelay:        time.Duration(j.Sync.RetryBaseDelay),
			RetryMaxDelay:         time.Duration(j.Sync.RetryMaxDelay),
			RetryBackoffFactor:    j.Sync.RetryBackoffFactor,
			MaxRetryCount:         j.Sync.MaxRetryCount,
			DefaultStrategy:       j.Sync.DefaultStrategy,
			Strategies:            j.Sync.Strategies,
			LogRetention:          j.Sync.LogRetention,
		},
		Network: Network{
			ProbeInterval:      time.Duration(j.Network.ProbeInterval),
			ProbeTimeout:       time.Duration(j.Network.ProbeTimeout),
			StabilizationDelay: time.Duration(j.Network.StabilizationDelay),
			ProbeOnly:          j.Network.ProbeOnly,
		},
		Log: Log{
			File:       j.Log.File,
			Level:      j.Log.Level,
			MaxSizeMB:  j.Log.MaxSizeMB,
			MaxBackups: j.Log.MaxBackups,
			MaxAgeDays: j.Log.MaxAgeDays,
			Compress:   j.Log.Compress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
