// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Preferences holds the SDK's persisted identity and fingerprints.
	Preferences PreferenceStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wraps the suite-scoped SQLite storage in a read-through cache.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewCachedPreferenceStorage(NewSQLitePreferenceStorage(db, cfg.SuiteName, logger)),
	}, nil
}

// NewMemoryClientStorages returns storages that live only as long as the
// process. Used when the database cannot be opened.
func NewMemoryClientStorages() *ClientStorages {
	return &ClientStorages{
		Preferences: NewMemoryPreferenceStorage(),
	}
}

// Close releases every storage.
func (s *ClientStorages) Close() error {
	return s.Preferences.Close()
}
