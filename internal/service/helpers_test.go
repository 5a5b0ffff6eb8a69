// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/models"
)

// stubFingerprint is ready once v is non-empty.
type stubFingerprint struct {
	mu sync.Mutex
	v  string
}

func (f *stubFingerprint) Value() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v, f.v != ""
}

func (f *stubFingerprint) set(v string) {
	f.mu.Lock()
	f.v = v
	f.mu.Unlock()
}

type resolverFunc func(ctx context.Context) async.State[models.SessionUser]

func (f resolverFunc) Resolve(ctx context.Context) async.State[models.SessionUser] { return f(ctx) }

type listerFunc func(ctx context.Context) async.State[[]models.ArtifactRef]

func (f listerFunc) List(ctx context.Context) async.State[[]models.ArtifactRef] { return f(ctx) }
