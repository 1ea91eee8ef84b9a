// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the SDK credentials and identity settings.
type ClientApp struct {
	// APIKey is sent in the "apiKey" header.
	APIKey string
	// Secret is sent in the "X-CF-header" header.
	Secret string
	// SuiteName scopes persisted preferences.
	SuiteName string
	// LogPath is the log file of the client harness.
	LogPath string
}

// ClientAdapter holds network settings used by the SDK transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SuiteName scopes every key written through this storage.
	SuiteName string
}

// ClientWorkers contains dispatcher settings.
type ClientWorkers struct {
	// DispatchWorkers is the number of sending goroutines.
	DispatchWorkers int
	// QueueSize bounds the number of pending sends.
	QueueSize int
	// ResyncInterval is the period of the background resync; zero disables it.
	ResyncInterval time.Duration
}

// ClientConfig is the top-level SDK configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// Args are the positional arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the SDK runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIKey:    cfg.App.APIKey,
			Secret:    cfg.App.Secret,
			SuiteName: cfg.App.SuiteName,
			LogPath:   cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:        ClientDB{DSN: cfg.Storage.DB.DSN},
			SuiteName: cfg.App.SuiteName,
		},
		Workers: ClientWorkers{
			DispatchWorkers: cfg.Workers.DispatchWorkers,
			QueueSize:       cfg.Workers.QueueSize,
			ResyncInterval:  cfg.Workers.ResyncInterval,
		},
		Args: cfg.Args,
	}
}
