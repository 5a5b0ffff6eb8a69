// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the client side of the PII Sentinel HTTP
// contract.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from resty and from the backend's URL layout. Every non-2xx response
// is turned into a [*StatusError] whose Message is the best user-facing text
// that could be extracted from the body, so that callers can use [errors.Is]
// with [ErrHTTPStatus] and [errors.As] to read the code.
package adapter

import (
	"context"
	"io"

	"github.com/pii-sentinel/sentinel-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the PII Sentinel backend.
//
// Authenticated calls read the current credential from the injected
// credential reader at call time; the adapter itself never stores a token.
type ServerAdapter interface {
	// Login exchanges email, password and device fingerprint for a bearer
	// credential via POST /auth/token (form-encoded, password grant).
	Login(ctx context.Context, req models.LoginRequest) (models.Credential, error)

	// Register creates an account via POST /auth/register and returns the
	// server's confirmation message. It does not authenticate.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Logout asks the server to invalidate the current session.
	Logout(ctx context.Context) error

	// Me returns the identity bound to the current credential
	// (GET /protected/me).
	Me(ctx context.Context) (models.SessionUser, error)

	// ListArtifacts returns the redaction outputs visible to the session in
	// server order (GET /redacted/files). An empty list is a valid result.
	ListArtifacts(ctx context.Context) ([]models.ArtifactRef, error)

	// Download streams the artifact called name into w (GET /download/{name})
	// and returns the number of bytes written.
	Download(ctx context.Context, name string, w io.Writer) (int64, error)

	// Upload sends a file for PII detection and redaction (POST /predict/).
	Upload(ctx context.Context, filename string, r io.Reader) (models.ScanResult, error)

	// ResendVerification asks the server to send a new verification email.
	ResendVerification(ctx context.Context, email string) (string, error)

	// VerificationStatus reports whether email has been verified.
	VerificationStatus(ctx context.Context, email string) (bool, error)
}
