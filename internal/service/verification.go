// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
)

// EmailValidator checks a single address.
type EmailValidator interface {
	ValidateEmail(ctx context.Context, email string) error
}

// VerificationService wraps the email verification endpoints.
type VerificationService struct {
	adapter   adapter.ServerAdapter
	validator EmailValidator
	logger    *logger.Logger
}

func NewVerificationService(serverAdapter adapter.ServerAdapter, validator EmailValidator, log *logger.Logger) *VerificationService {
	return &VerificationService{adapter: serverAdapter, validator: validator, logger: log.WithComponent("verification")}
}

// Resend asks the backend to send another verification email.
func (s *VerificationService) Resend(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if err := s.validator.ValidateEmail(ctx, email); err != nil {
		return "", err
	}

	msg, err := s.adapter.ResendVerification(ctx, email)
	if err != nil {
		s.logger.Err(err).Str("func", "VerificationService.Resend").Msg("resend failed")
		return "", fmt.Errorf("resend verification: %w", err)
	}
	return msg, nil
}

// Status reports whether email has been verified.
func (s *VerificationService) Status(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if err := s.validator.ValidateEmail(ctx, email); err != nil {
		return false, err
	}

	verified, err := s.adapter.VerificationStatus(ctx, email)
	if err != nil {
		s.logger.Err(err).Str("func", "VerificationService.Status").Msg("status check failed")
		return false, fmt.Errorf("verification status: %w", err)
	}
	return verified, nil
}

var _ EmailValidator = (*validators.FormValidator)(nil)
