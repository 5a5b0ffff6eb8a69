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
)

// DownloadService streams artifacts into a local directory.
type DownloadService struct {
	adapter adapter.ServerAdapter
	dir     string
	logger  *logger.Logger
}

func NewDownloadService(serverAdapter adapter.ServerAdapter, dir string, log *logger.Logger) *DownloadService {
	if dir == "" {
		dir = "."
	}
	return &DownloadService{adapter: serverAdapter, dir: dir, logger: log.WithComponent("download")}
}

// Download saves the artifact called name and returns the local path.
// The file is written under a temporary name first so an interrupted
// transfer never leaves a truncated artifact behind.
func (s *DownloadService) Download(ctx context.Context, name string) (string, error) {
	base, err := safeArtifactName(name)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+base+".*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := s.adapter.Download(ctx, name, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.logger.Err(err).Str("func", "DownloadService.Download").Str("artifact", name).Msg("download failed")
		return "", fmt.Errorf("download %s: %w", name, err)
	}

	dst := filepath.Join(s.dir, base)
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("save download: %w", err)
	}

	s.logger.Info().Str("func", "DownloadService.Download").
		Str("artifact", name).
		Int64("bytes", n).
		Msg("artifact saved")
	return dst, nil
}

func safeArtifactName(name string) (string, error) {
	name = strings.TrimSpace(name)
	base := filepath.Base(filepath.FromSlash(name))
	if name == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArtifactName, name)
	}
	return base, nil
}
