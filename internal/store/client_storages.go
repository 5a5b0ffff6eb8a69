// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence: a SQLite
// key/value table migrated with goose and the session credential store
// layered on top of it.
package store

import (
	"context"
	"fmt"

	"github.com/pii-sentinel/sentinel-client/internal/config"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
)

// ClientStorages groups the client-side storage components.
type ClientStorages struct {
	// Credentials holds the session credential.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages opens the SQLite database, applies migrations and loads
// the persisted credential.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log = log.WithComponent("store")
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	creds, err := NewCredentialStore(ctx, NewClientStateRepository(db, log), log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{Credentials: creds, db: db}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
