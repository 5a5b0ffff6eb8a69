// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/internal/utils"
	"github.com/pii-sentinel/sentinel-client/models"
)

// SessionResolver fetches the identity behind the stored credential. It
// issues at most one request per call and never retries; deciding what to
// do with a failure (for example returning to the menu) is the caller's job.
type SessionResolver struct {
	adapter     adapter.ServerAdapter
	credentials store.CredentialReader
	logger      *logger.Logger

	now func() time.Time
}

func NewSessionResolver(serverAdapter adapter.ServerAdapter, credentials store.CredentialReader, log *logger.Logger) *SessionResolver {
	return &SessionResolver{
		adapter:     serverAdapter,
		credentials: credentials,
		logger:      log.WithComponent("session"),
		now:         time.Now,
	}
}

// Resolve returns Ready with the user, or Failed with an error that carries
// an HTTP status code (see [adapter.StatusCode]). A missing credential or
// one whose exp claim has passed fails with 401 without a network call.
func (r *SessionResolver) Resolve(ctx context.Context) async.State[models.SessionUser] {
	token, ok := r.credentials.Get()
	if !ok {
		return async.Fail[models.SessionUser](unauthorized(ErrNoCredential))
	}

	// Opaque tokens are fine; only a readable exp claim short-circuits.
	claims, claimsErr := utils.ParseCredentialClaims(token.String())
	if claimsErr == nil && claims.Expired(r.now()) {
		r.logger.Info().Str("func", "SessionResolver.Resolve").Msg("stored credential expired")
		return async.Fail[models.SessionUser](unauthorized(ErrCredentialExpired))
	}

	user, err := r.adapter.Me(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "SessionResolver.Resolve").Msg("failed to resolve session")
		return async.Fail[models.SessionUser](fmt.Errorf("resolve session: %w", err))
	}

	if user.Tier == "" {
		user.Tier = models.DefaultTier
		if claimsErr == nil {
			if tier, err := models.ParseTier(claims.Tier); err == nil {
				user.Tier = tier
			}
		}
	}

	return async.Done(user)
}

// unauthorized pairs a local session error with a 401 status so consumers
// can treat it like the server's answer.
func unauthorized(cause error) error {
	return fmt.Errorf("%w: %w", cause, adapter.NewStatusError(http.StatusUnauthorized, cause.Error()))
}
