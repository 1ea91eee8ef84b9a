// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectPreferenceQuery(suite, key string) (string, []any, error) {
	return psql.
		Select("value").
		From(preferencesTable).
		Where(sq.And{sq.Eq{"suite": suite}, sq.Eq{"name": key}}).
		Limit(1).
		ToSql()
}

func upsertPreferenceQuery(suite, key, value string, at time.Time) (string, []any, error) {
	return psql.
		Insert(preferencesTable).
		Columns("suite", "name", "value", "updated_at").
		Values(suite, key, value, at.UTC()).
		Suffix("ON CONFLICT (suite, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deletePreferenceQuery(suite, key string) (string, []any, error) {
	return psql.
		Delete(preferencesTable).
		Where(sq.And{sq.Eq{"suite": suite}, sq.Eq{"name": key}}).
		ToSql()
}
