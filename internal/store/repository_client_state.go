// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
)

type clientStateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewClientStateRepository returns a [ClientStateRepository] backed by db.
func NewClientStateRepository(db *DB, log *logger.Logger) ClientStateRepository {
	return &clientStateRepository{db: db, logger: log, now: time.Now}
}

func (r *clientStateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := selectStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("build select query: %w", err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrStateNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "clientStateRepository.Get").Str("key", key).Msg("error reading client state")
		return "", fmt.Errorf("read client state %q: %w", key, err)
	}

	return value, nil
}

func (r *clientStateRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := upsertStateQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "clientStateRepository.Put").Str("key", key).Msg("error writing client state")
		return fmt.Errorf("write client state %q: %w", key, err)
	}

	return nil
}

func (r *clientStateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := deleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "clientStateRepository.Delete").Str("key", key).Msg("error deleting client state")
		return fmt.Errorf("delete client state %q: %w", key, err)
	}

	return nil
}
