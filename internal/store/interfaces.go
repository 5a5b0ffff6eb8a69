// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/pii-sentinel/sentinel-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientStateRepository is a small durable key/value table kept in the
// client's SQLite database.
type ClientStateRepository interface {
	// Get returns the stored value or [ErrStateNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put inserts or replaces the value for key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CredentialReader gives read access to the current session credential.
// The HTTP adapter consults it on every authenticated call.
type CredentialReader interface {
	// Get returns the stored credential and true, or false when there is none.
	Get() (models.Credential, bool)
}

// CredentialStore holds the single session credential.
//
// Get never blocks on I/O: implementations keep the value in memory and
// treat the backing store as write-through.
type CredentialStore interface {
	CredentialReader

	// Set persists token and makes it visible to Get. On error the
	// previously stored value is kept.
	Set(ctx context.Context, token models.Credential) error

	// Clear removes the credential. After Clear returns, Get reports no
	// credential even if removing it from durable storage failed.
	Clear(ctx context.Context) error
}
