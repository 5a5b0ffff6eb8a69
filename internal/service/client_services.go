// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
)

// ClientServices bundles every service the TUI needs.
type ClientServices struct {
	Login        *LoginFlow
	Register     *RegisterFlow
	Upload       *UploadFlow
	Session      *SessionResolver
	Artifacts    *ArtifactLister
	Logout       *LogoutService
	Download     *DownloadService
	Verification *VerificationService
}

// NewClientServices wires the services around one adapter and one
// credential store.
func NewClientServices(
	serverAdapter adapter.ServerAdapter,
	credentials store.CredentialStore,
	fingerprint Fingerprint,
	downloadDir string,
	recorder metrics.Recorder,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewFormValidator()

	return &ClientServices{
		Login:        NewLoginFlow(serverAdapter, credentials, fingerprint, validator, recorder, log),
		Register:     NewRegisterFlow(serverAdapter, fingerprint, validator, recorder, log),
		Upload:       NewUploadFlow(serverAdapter, credentials, fingerprint, recorder, log),
		Session:      NewSessionResolver(serverAdapter, credentials, log),
		Artifacts:    NewArtifactLister(serverAdapter, log),
		Logout:       NewLogoutService(serverAdapter, credentials, log),
		Download:     NewDownloadService(serverAdapter, downloadDir, log),
		Verification: NewVerificationService(serverAdapter, validator, log),
	}
}

// NewDashboardLoader returns a loader over the session and artifact
// services. Each dashboard page owns one.
func (s *ClientServices) NewDashboardLoader() *DashboardLoader {
	return NewDashboardLoader(s.Session, s.Artifacts)
}
