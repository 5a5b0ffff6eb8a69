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
	"github.com/pii-sentinel/sentinel-client/internal/validators"
	"github.com/pii-sentinel/sentinel-client/models"
)

// DefaultRegisterMessage is shown when the backend confirms a registration
// without a message of its own.
const DefaultRegisterMessage = "Registration successful. Please check your email to verify your account."

// RegisterForm is the raw user input of the registration page.
type RegisterForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	// Tier may be empty, in which case the free tier is requested.
	Tier string
}

// RegisterFlow creates an account. A successful registration does not
// authenticate; the user logs in separately.
type RegisterFlow struct {
	adapter     adapter.ServerAdapter
	fingerprint Fingerprint
	validator   validators.Validator
	metrics     metrics.Recorder
	logger      *logger.Logger

	guard flowGuard
}

func NewRegisterFlow(
	serverAdapter adapter.ServerAdapter,
	fingerprint Fingerprint,
	validator validators.Validator,
	recorder metrics.Recorder,
	log *logger.Logger,
) *RegisterFlow {
	return &RegisterFlow{
		adapter:     serverAdapter,
		fingerprint: fingerprint,
		validator:   validator,
		metrics:     recorder,
		logger:      log.WithComponent("register"),
	}
}

func (f *RegisterFlow) State() FlowState {
	return f.guard.current()
}

func (f *RegisterFlow) Reset() {
	f.guard.reset()
}

// Register submits form and returns the confirmation message to display.
// The same fingerprint and in-flight rules as [LoginFlow.Login] apply.
func (f *RegisterFlow) Register(ctx context.Context, form RegisterForm) (msg string, err error) {
	fp, ok := f.fingerprint.Value()
	if !ok {
		f.metrics.RecordSubmissionRejected("register", reasonNotReady)
		return "", ErrFingerprintNotReady
	}

	if !f.guard.begin() {
		f.metrics.RecordSubmissionRejected("register", reasonInProgress)
		return "", ErrSubmissionInProgress
	}
	defer func() { f.guard.finish(err) }()

	req := models.RegisterRequest{
		FirstName:         strings.TrimSpace(form.FirstName),
		LastName:          strings.TrimSpace(form.LastName),
		Email:             normalizeEmail(form.Email),
		Password:          form.Password,
		Tier:              normalizeTier(form.Tier),
		DeviceFingerprint: fp,
	}
	if err = f.validator.Validate(ctx, req); err != nil {
		f.metrics.RecordSubmissionRejected("register", reasonValidation)
		return "", err
	}

	msg, err = f.adapter.Register(ctx, req)
	if err != nil {
		f.logger.Err(err).Str("func", "RegisterFlow.Register").Msg("registration failed")
		return "", fmt.Errorf("register: %w", err)
	}

	if strings.TrimSpace(msg) == "" {
		msg = DefaultRegisterMessage
	}
	f.logger.Info().Str("func", "RegisterFlow.Register").Str("tier", string(req.Tier)).Msg("registered")
	return msg, nil
}

// normalizeTier lowercases the input and maps an empty value to the default
// tier. Unknown values pass through so validation can name them.
func normalizeTier(raw string) models.Tier {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return models.DefaultTier
	}
	return models.Tier(t)
}
