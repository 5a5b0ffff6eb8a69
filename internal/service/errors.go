// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/pii-sentinel/sentinel-client/internal/validators"
)

var (
	// ErrFingerprintNotReady is returned by every fingerprint-gated flow when
	// the device identifier has not been computed yet. No request is sent.
	ErrFingerprintNotReady = errors.New("device fingerprint not ready")

	// ErrSubmissionInProgress is returned when a flow is asked to submit while
	// a previous submission of the same flow is still in flight.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrNoCredential means there is no stored access credential.
	ErrNoCredential = errors.New("no stored credential")

	// ErrCredentialExpired means the stored credential carries an exp claim
	// in the past.
	ErrCredentialExpired = errors.New("stored credential expired")

	// ErrValidation wraps client-side form validation failures.
	ErrValidation = validators.ErrInvalidInput

	// ErrUnsupportedFileType is returned by the upload flow for files whose
	// extension the scanner does not accept.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidArtifactName is returned for download names that do not
	// reduce to a plain file name.
	ErrInvalidArtifactName = errors.New("invalid artifact name")
)
