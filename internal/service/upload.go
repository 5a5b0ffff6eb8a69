// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/models"
)

// AllowedUploadExtensions are the file types the scanner accepts.
var AllowedUploadExtensions = []string{
	".csv", ".xlsx", ".tsv", ".txt", ".log", ".json", ".xml", ".docx", ".pdf", ".html",
}

// IsAllowedUpload reports whether name has an accepted extension. The check
// ignores case.
func IsAllowedUpload(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// UploadFlow sends a local file to POST /predict/ for scanning.
type UploadFlow struct {
	adapter     adapter.ServerAdapter
	credentials store.CredentialReader
	fingerprint Fingerprint
	metrics     metrics.Recorder
	logger      *logger.Logger

	open  func(name string) (*os.File, error)
	guard flowGuard
}

func NewUploadFlow(
	serverAdapter adapter.ServerAdapter,
	credentials store.CredentialReader,
	fingerprint Fingerprint,
	recorder metrics.Recorder,
	log *logger.Logger,
) *UploadFlow {
	return &UploadFlow{
		adapter:     serverAdapter,
		credentials: credentials,
		fingerprint: fingerprint,
		metrics:     recorder,
		logger:      log.WithComponent("upload"),
		open:        os.Open,
	}
}

func (f *UploadFlow) State() FlowState {
	return f.guard.current()
}

func (f *UploadFlow) Reset() {
	f.guard.reset()
}

// Upload scans the file at path. The request carries only the base name.
func (f *UploadFlow) Upload(ctx context.Context, path string) (result models.ScanResult, err error) {
	if _, ok := f.fingerprint.Value(); !ok {
		f.metrics.RecordSubmissionRejected("upload", reasonNotReady)
		return models.ScanResult{}, ErrFingerprintNotReady
	}

	if !f.guard.begin() {
		f.metrics.RecordSubmissionRejected("upload", reasonInProgress)
		return models.ScanResult{}, ErrSubmissionInProgress
	}
	defer func() { f.guard.finish(err) }()

	path = strings.TrimSpace(path)
	name := filepath.Base(path)
	if path == "" || !IsAllowedUpload(name) {
		f.metrics.RecordSubmissionRejected("upload", reasonUnsupported)
		return models.ScanResult{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(name))
	}

	if _, ok := f.credentials.Get(); !ok {
		f.metrics.RecordSubmissionRejected("upload", reasonNoSession)
		return models.ScanResult{}, ErrNoCredential
	}

	file, err := f.open(path)
	if err != nil {
		return models.ScanResult{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	result, err = f.adapter.Upload(ctx, name, file)
	if err != nil {
		f.logger.Err(err).Str("func", "UploadFlow.Upload").Str("file", name).Msg("upload failed")
		return models.ScanResult{}, fmt.Errorf("upload: %w", err)
	}

	f.logger.Info().Str("func", "UploadFlow.Upload").
		Str("file", name).
		Int("redacted", result.RedactedCount).
		Msg("file scanned")
	return result, nil
}
