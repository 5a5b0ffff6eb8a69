// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
	"github.com/pii-sentinel/sentinel-client/models"
)

// Rejection reasons reported to [metrics.Recorder].
const (
	reasonNotReady    = "fingerprint_not_ready"
	reasonInProgress  = "in_progress"
	reasonValidation  = "validation"
	reasonUnsupported = "unsupported_file"
	reasonNoSession   = "no_credential"
)

// LoginFlow exchanges email and password for a credential and stores it.
type LoginFlow struct {
	adapter     adapter.ServerAdapter
	credentials store.CredentialStore
	fingerprint Fingerprint
	validator   validators.Validator
	metrics     metrics.Recorder
	logger      *logger.Logger

	guard flowGuard
}

// NewLoginFlow returns an idle login flow.
func NewLoginFlow(
	serverAdapter adapter.ServerAdapter,
	credentials store.CredentialStore,
	fingerprint Fingerprint,
	validator validators.Validator,
	recorder metrics.Recorder,
	log *logger.Logger,
) *LoginFlow {
	return &LoginFlow{
		adapter:     serverAdapter,
		credentials: credentials,
		fingerprint: fingerprint,
		validator:   validator,
		metrics:     recorder,
		logger:      log.WithComponent("login"),
	}
}

// State reports where the flow is in its Idle, Submitting, Succeeded or
// Failed cycle.
func (f *LoginFlow) State() FlowState {
	return f.guard.current()
}

// Reset puts a finished flow back to Idle.
func (f *LoginFlow) Reset() {
	f.guard.reset()
}

// Login performs one credential exchange.
//
// The fingerprint is checked before anything else: when it is not ready the
// call returns [ErrFingerprintNotReady], issues no request and leaves the
// flow state untouched. A second call while one is in flight returns
// [ErrSubmissionInProgress]. On success the credential is written to the
// store before Login returns.
func (f *LoginFlow) Login(ctx context.Context, email, password string) (err error) {
	fp, ok := f.fingerprint.Value()
	if !ok {
		f.metrics.RecordSubmissionRejected("login", reasonNotReady)
		return ErrFingerprintNotReady
	}

	if !f.guard.begin() {
		f.metrics.RecordSubmissionRejected("login", reasonInProgress)
		return ErrSubmissionInProgress
	}
	defer func() { f.guard.finish(err) }()

	req := models.LoginRequest{
		Email:             normalizeEmail(email),
		Password:          password,
		DeviceFingerprint: fp,
	}
	if err = f.validator.Validate(ctx, req); err != nil {
		f.metrics.RecordSubmissionRejected("login", reasonValidation)
		return err
	}

	token, err := f.adapter.Login(ctx, req)
	if err != nil {
		f.logger.Err(err).Str("func", "LoginFlow.Login").Msg("credential exchange failed")
		return fmt.Errorf("login: %w", err)
	}

	if err = f.credentials.Set(ctx, token); err != nil {
		f.logger.Err(err).Str("func", "LoginFlow.Login").Msg("failed to store credential")
		return fmt.Errorf("store credential: %w", err)
	}

	f.logger.Info().Str("func", "LoginFlow.Login").Msg("logged in")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
