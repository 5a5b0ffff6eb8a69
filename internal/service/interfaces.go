// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's orchestration core: the fingerprint
// gated login, registration and upload flows, the session resolver, the
// artifact lister, the dashboard composer and logout.
//
// Services talk to the backend only through [adapter.ServerAdapter] and to
// the durable credential only through [store.CredentialStore]. Both are
// injected, so nothing in this package touches global state and every type
// can be driven from tests with the mocks in internal/mock.
package service

import (
	"context"

	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/models"
)

// Fingerprint is the read side of the device fingerprint provider.
// Value reports false until a non-empty identifier is available.
type Fingerprint interface {
	Value() (string, bool)
}

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	State() FlowState
}

// Registrar creates accounts. It never authenticates.
type Registrar interface {
	Register(ctx context.Context, form RegisterForm) (string, error)
	State() FlowState
}

// Uploader sends a local file to the scanner.
type Uploader interface {
	Upload(ctx context.Context, path string) (models.ScanResult, error)
	State() FlowState
}

// Resolver fetches the identity behind the stored credential.
type Resolver interface {
	Resolve(ctx context.Context) async.State[models.SessionUser]
}

// Lister fetches the redaction artifacts visible to the session.
type Lister interface {
	List(ctx context.Context) async.State[[]models.ArtifactRef]
}

// Logouter ends the session.
type Logouter interface {
	Logout(ctx context.Context) error
}

// Downloader saves an artifact into the configured download directory.
type Downloader interface {
	Download(ctx context.Context, name string) (string, error)
}

// Verifier wraps the email verification helpers.
type Verifier interface {
	Resend(ctx context.Context, email string) (string, error)
	Status(ctx context.Context, email string) (bool, error)
}
