// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec(".*").WillReturnError(errors.New("disk I/O error"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLiteCreatesClientState(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// running twice is a no-op
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO client_state (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("client_state table missing: %v", err)
	}
}
