// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"fingerprint", service.ErrFingerprintNotReady, MsgFingerprintNotReady},
		{"in progress", service.ErrSubmissionInProgress, MsgSubmissionInProgress},
		{"status message", fmt.Errorf("login: %w", adapter.NewStatusError(422, "a, b")), "a, b"},
		{"status without message", adapter.NewStatusError(500, ""), MsgUnexpectedResponse},
		{"raw text body", adapter.NewStatusError(502, "Bad Gateway"), "Bad Gateway"},
		{"validation", &validators.ValidationError{Messages: []string{"email is required", "password is required"}},
			"email is required, password is required"},
		{"network", fmt.Errorf("%w: %w", adapter.ErrNetwork, errors.New("dial tcp")), MsgNetworkFailure},
		{"rate limited", adapter.ErrRateLimited, MsgRateLimited},
		{"unexpected shape", fmt.Errorf("decode: %w", adapter.ErrUnexpectedResponse), MsgUnexpectedResponse},
		{"expired beats status", fmt.Errorf("%w: %w", service.ErrCredentialExpired, adapter.NewStatusError(401, "x")), MsgSessionExpired},
		{"missing credential", service.ErrNoCredential, MsgSessionMissing},
		{"upload type", fmt.Errorf("%w: %q", service.ErrUnsupportedFileType, ".exe"), MsgUnsupportedFileType},
		{"bad name", service.ErrInvalidArtifactName, MsgInvalidArtifactName},
		{"unknown", errors.New("boom"), MsgSomethingWentWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
