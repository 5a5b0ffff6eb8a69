// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableClientState = "client_state"

	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

// psql builds statements with SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectStateQuery(key string) (string, []any, error) {
	return psql.Select(columnValue).
		From(tableClientState).
		Where(sq.Eq{columnKey: key}).
		Limit(1).
		ToSql()
}

func upsertStateQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.Insert(tableClientState).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(" + columnKey + ") DO UPDATE SET " +
			columnValue + " = excluded." + columnValue + ", " +
			columnUpdatedAt + " = excluded." + columnUpdatedAt).
		ToSql()
}

func deleteStateQuery(key string) (string, []any, error) {
	return psql.Delete(tableClientState).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}
