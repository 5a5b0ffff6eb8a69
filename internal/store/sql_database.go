// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/migrations"
)

// DB wraps the SQLite connection pool together with the store logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
