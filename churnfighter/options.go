// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package churnfighter

import (
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/rs/zerolog"
)

type options struct {
	baseURL         string
	requestTimeout  time.Duration
	dsn             string
	suiteName       string
	dispatchWorkers int
	queueSize       int
	resyncInterval  time.Duration
	eventBuffer     int
	fatal           service.FatalHandler
	logger          *logger.Logger

	// dispatcher replaces the worker pool; tests use an inline one.
	dispatcher workers.TaskDispatcher
}

func defaultOptions() options {
	log := logger.NewWriterLogger("churnfighter", os.Stderr)
	log.Logger = log.Level(zerolog.InfoLevel)

	return options{
		baseURL:         config.DefaultAPIAddress,
		requestTimeout:  config.DefaultRequestTimeout,
		dsn:             config.DefaultDSN,
		suiteName:       config.DefaultSuiteName,
		dispatchWorkers: config.DefaultDispatchWorkers,
		queueSize:       config.DefaultDispatchQueue,
		eventBuffer:     service.DefaultEventBuffer,
		logger:          log,
	}
}

// Option customises a [ChurnFighter].
type Option func(*options)

// WithBaseURL points the SDK at another backend, e.g. a local sandbox.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithRequestTimeout bounds every backend request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.requestTimeout = timeout
		}
	}
}

// WithDatabase selects the SQLite database holding the user id and the
// upload fingerprints. An empty dsn keeps them in memory for the process
// lifetime only.
func WithDatabase(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithSuiteName scopes the persisted values, letting several SDK instances
// share one database.
func WithSuiteName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.suiteName = name
		}
	}
}

// WithDispatchWorkers sizes the upload worker pool and its queue.
func WithDispatchWorkers(workers, queueSize int) Option {
	return func(o *options) {
		if workers > 0 {
			o.dispatchWorkers = workers
		}
		if queueSize > 0 {
			o.queueSize = queueSize
		}
	}
}

// WithResyncInterval re-runs the receipt and user-state uploads
// periodically after Initialize. Zero disables the resync.
func WithResyncInterval(interval time.Duration) Option {
	return func(o *options) {
		o.resyncInterval = interval
	}
}

// WithEventBuffer sizes the transaction event stream returned by Events.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}

// WithFatalHandler receives integration errors, such as a purchase
// transaction in a state the SDK does not know. The default logs them at
// fatal level and keeps the host running.
func WithFatalHandler(handler func(error)) Option {
	return func(o *options) {
		if handler != nil {
			o.fatal = handler
		}
	}
}

// WithLogger replaces the SDK logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithLogWriter writes JSON logs to w.
func WithLogWriter(w io.Writer) Option {
	return func(o *options) {
		o.logger = logger.NewWriterLogger("churnfighter", w)
	}
}

// OptionsFromConfig converts a loaded client configuration into options.
func OptionsFromConfig(cfg *config.ClientConfig) []Option {
	return []Option{
		WithBaseURL(cfg.Adapter.HTTPAddress),
		WithRequestTimeout(cfg.Adapter.RequestTimeout),
		WithDatabase(cfg.Storage.DB.DSN),
		WithSuiteName(cfg.Storage.SuiteName),
		WithDispatchWorkers(cfg.Workers.DispatchWorkers, cfg.Workers.QueueSize),
		WithResyncInterval(cfg.Workers.ResyncInterval),
	}
}

func withDispatcher(d workers.TaskDispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}
