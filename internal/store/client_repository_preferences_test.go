// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestPreferenceStorage(t *testing.T) (*sqlitePreferenceStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLitePreferenceStorage(&DB{DB: db, logger: l}, "churnFighter", l).(*sqlitePreferenceStorage)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func TestSQLitePreferenceStorage_Get(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM preferences WHERE (suite = ? AND name = ?) LIMIT 1")).
		WithArgs("churnFighter", UserIDKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("user-1"))

	got, err := s.Get(context.Background(), UserIDKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePreferenceStorage_Get_NotFound(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("churnFighter", UserHashKey).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), UserHashKey)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePreferenceStorage_Get_EmptyResult(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("churnFighter", UserHashKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), UserHashKey)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestSQLitePreferenceStorage_Get_DBError(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), ReceiptHashKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrPreferenceNotFound)
}

func TestSQLitePreferenceStorage_Set(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO preferences (suite,name,value,updated_at) VALUES (?,?,?,?) ON CONFLICT (suite, name) DO UPDATE")).
		WithArgs("churnFighter", ReceiptHashKey, "abc", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), ReceiptHashKey, "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePreferenceStorage_Set_Error(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectExec("INSERT INTO preferences").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), ReceiptHashKey, "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLitePreferenceStorage_Delete(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preferences WHERE (suite = ? AND name = ?)")).
		WithArgs("churnFighter", UserHashKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), UserHashKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePreferenceStorage_Close(t *testing.T) {
	s, mock := newTestPreferenceStorage(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
