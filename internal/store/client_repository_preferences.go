// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
)

type sqlitePreferenceStorage struct {
	*DB
	suite  string
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLitePreferenceStorage returns a [PreferenceStorage] persisting every
// key of suite in the preferences table of db.
func NewSQLitePreferenceStorage(db *DB, suite string, logger *logger.Logger) PreferenceStorage {
	return &sqlitePreferenceStorage{
		DB:     db,
		suite:  suite,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqlitePreferenceStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := selectPreferenceQuery(s.suite, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferenceStorage.Get").
			Str("suite", s.suite).
			Str("key", key).
			Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqlitePreferenceStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertPreferenceQuery(s.suite, key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferenceStorage.Set").
			Str("suite", s.suite).
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlitePreferenceStorage) Delete(ctx context.Context, key string) error {
	query, args, err := deletePreferenceQuery(s.suite, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferenceStorage.Delete").
			Str("suite", s.suite).
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlitePreferenceStorage) Close() error {
	return s.DB.Close()
}
