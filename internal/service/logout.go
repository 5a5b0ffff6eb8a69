// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/store"
)

// LogoutService ends the session. The local credential is cleared no
// matter how the server call ends.
type LogoutService struct {
	adapter     adapter.ServerAdapter
	credentials store.CredentialStore
	logger      *logger.Logger
}

func NewLogoutService(serverAdapter adapter.ServerAdapter, credentials store.CredentialStore, log *logger.Logger) *LogoutService {
	return &LogoutService{adapter: serverAdapter, credentials: credentials, logger: log.WithComponent("logout")}
}

// Logout invalidates the server session, then clears the local credential.
// A server failure is logged and swallowed; only a failure to clear local
// state is returned, and even then the in-memory credential is gone.
func (s *LogoutService) Logout(ctx context.Context) error {
	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "LogoutService.Logout").Msg("server logout failed, clearing local session anyway")
	}

	if err := s.credentials.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "LogoutService.Logout").Msg("failed to clear stored credential")
		return fmt.Errorf("clear credential: %w", err)
	}

	s.logger.Info().Str("func", "LogoutService.Logout").Msg("logged out")
	return nil
}
