// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/models"
)

// CredentialKey is the client_state key under which the session token lives.
const CredentialKey = "access_token"

// persistentCredentialStore caches the credential in memory and writes it
// through to a [ClientStateRepository].
type persistentCredentialStore struct {
	repo   ClientStateRepository
	logger *logger.Logger

	mu    sync.RWMutex
	token models.Credential
}

// NewCredentialStore loads any previously saved credential from repo and
// returns a write-through store.
func NewCredentialStore(ctx context.Context, repo ClientStateRepository, log *logger.Logger) (CredentialStore, error) {
	s := &persistentCredentialStore{repo: repo, logger: log}

	raw, err := repo.Get(ctx, CredentialKey)
	switch {
	case errors.Is(err, ErrStateNotFound):
	case err != nil:
		return nil, fmt.Errorf("load credential: %w", err)
	default:
		s.token = models.NewCredential(raw)
	}

	return s, nil
}

func (s *persistentCredentialStore) Get() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, !s.token.IsZero()
}

func (s *persistentCredentialStore) Set(ctx context.Context, token models.Credential) error {
	token = models.NewCredential(token.String())
	if token.IsZero() {
		return ErrEmptyCredential
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Put(ctx, CredentialKey, token.String()); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	s.token = token

	s.logger.Debug().Str("func", "persistentCredentialStore.Set").Msg("credential stored")
	return nil
}

func (s *persistentCredentialStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := s.repo.Delete(ctx, CredentialKey); err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}

	s.logger.Debug().Str("func", "persistentCredentialStore.Clear").Msg("credential cleared")
	return nil
}

// MemoryCredentialStore is a process-local [CredentialStore]. The zero value
// is ready to use.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	token models.Credential
}

func (m *MemoryCredentialStore) Get() (models.Credential, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, !m.token.IsZero()
}

func (m *MemoryCredentialStore) Set(_ context.Context, token models.Credential) error {
	token = models.NewCredential(token.String())
	if token.IsZero() {
		return ErrEmptyCredential
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryCredentialStore) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
