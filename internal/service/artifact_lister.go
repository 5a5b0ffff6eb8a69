// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/models"
)

// ArtifactLister fetches the redaction outputs visible to the session.
type ArtifactLister struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewArtifactLister(serverAdapter adapter.ServerAdapter, log *logger.Logger) *ArtifactLister {
	return &ArtifactLister{adapter: serverAdapter, logger: log.WithComponent("artifacts")}
}

// List returns the artifacts in server order. An empty listing is Ready
// with a non-nil empty slice.
func (l *ArtifactLister) List(ctx context.Context) async.State[[]models.ArtifactRef] {
	refs, err := l.adapter.ListArtifacts(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "ArtifactLister.List").Msg("failed to list artifacts")
		return async.Fail[[]models.ArtifactRef](fmt.Errorf("list artifacts: %w", err))
	}
	if refs == nil {
		refs = []models.ArtifactRef{}
	}
	return async.Done(refs)
}
