// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pii-sentinel/sentinel-client/internal/config"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
)

func newMockRepo(t *testing.T) (*clientStateRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := &clientStateRepository{
		db:     &DB{DB: conn, logger: logger.Nop()},
		logger: logger.Nop(),
		now:    func() time.Time { return time.Unix(0, 0) },
	}
	return repo, mock
}

func newSQLiteRepo(t *testing.T) ClientStateRepository {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(),
		config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "client.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return NewClientStateRepository(db, logger.Nop())
}

// ── sqlmock ───────────────────────────────────────────────────────────────────

func TestClientStateRepository_Get_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state WHERE key = ?")).
		WithArgs("access_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))

	v, err := repo.Get(context.Background(), "access_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStateRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT value FROM client_state").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestClientStateRepository_Get_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT value FROM client_state").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStateNotFound)
}

func TestClientStateRepository_Put(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO client_state").
		WithArgs("k", "v", time.Unix(0, 0).UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Put(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStateRepository_Put_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO client_state").WillReturnError(errors.New("readonly"))

	assert.Error(t, repo.Put(context.Background(), "k", "v"))
}

func TestClientStateRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM client_state WHERE key = ?")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── sqlite ────────────────────────────────────────────────────────────────────

func TestClientStateRepository_SQLite_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStateNotFound)

	require.NoError(t, repo.Put(ctx, "k", "one"))
	require.NoError(t, repo.Put(ctx, "k", "two"))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err = repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStateNotFound)
}
