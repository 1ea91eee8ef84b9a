// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to the merged configuration for every field left empty by
// all sources.
const (
	DefaultAPIAddress       = "https://api.churnfighter.io"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultSuiteName        = "churnFighter"
	DefaultDSN              = "churnfighter.db"
	DefaultDispatchWorkers  = 2
	DefaultDispatchQueue    = 64
	DefaultSandboxAddress   = "localhost:8080"
	DefaultSubmissionTTL    = time.Hour
	DefaultOfferKeyID       = "SANDBOX-KEY"
	DefaultDotEnvFile       = ".env"
	defaultSandboxReadLimit = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// churn-fighter binaries. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the backend credentials and SDK-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local preference store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the sandbox backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound transport settings used by the SDK.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the fire-and-forget dispatcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file. When empty, ".env" in
	// the working directory is used if it exists.
	EnvFilePath string `env:"ENV_FILE"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Not loaded from the environment.
	Args []string
}

// App holds backend credentials and SDK-level settings.
type App struct {
	// APIKey identifies the application on the backend (header "apiKey").
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Secret is the shared secret sent in the "X-CF-header" header.
	// Env: APP_SECRET
	Secret string `env:"SECRET"`

	// SuiteName scopes the persisted preferences, so that several SDK
	// instances can share one database.
	// Env: APP_SUITE_NAME
	SuiteName string `env:"SUITE_NAME"`

	// LogPath is the file the client harness logs to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for the local preference store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite preference database.
type DB struct {
	// DSN is the SQLite data source name (a file path or "file:" URI).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the sandbox backend.
type Server struct {
	// HTTPAddress is the TCP address the sandbox listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OfferKeyIdentifier is returned as keyIdentifier with every offer
	// signature.
	// Env: SERVER_OFFER_KEY_ID
	OfferKeyIdentifier string `env:"OFFER_KEY_ID"`

	// SubmissionTTL is how long received submissions stay inspectable.
	// Env: SERVER_SUBMISSION_TTL
	SubmissionTTL time.Duration `env:"SUBMISSION_TTL"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://api.churnfighter.io").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds settings of the fire-and-forget dispatcher.
type Workers struct {
	// DispatchWorkers is the number of goroutines sending requests.
	// Env: WORKERS_DISPATCH_WORKERS
	DispatchWorkers int `env:"DISPATCH_WORKERS"`

	// QueueSize bounds the number of pending sends.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// ResyncInterval re-runs the upload decisions periodically. Zero
	// disables the background resync.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags (parsed from args)
//  4. JSON file (path resolved from sources 1-3)
//
// Defaults are applied to whatever is still empty afterwards.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.SuiteName == "" {
		cfg.App.SuiteName = DefaultSuiteName
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAPIAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.DispatchWorkers == 0 {
		cfg.Workers.DispatchWorkers = DefaultDispatchWorkers
	}
	if cfg.Workers.QueueSize == 0 {
		cfg.Workers.QueueSize = DefaultDispatchQueue
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultSandboxAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultSandboxReadLimit
	}
	if cfg.Server.OfferKeyIdentifier == "" {
		cfg.Server.OfferKeyIdentifier = DefaultOfferKeyID
	}
	if cfg.Server.SubmissionTTL == 0 {
		cfg.Server.SubmissionTTL = DefaultSubmissionTTL
	}
}
