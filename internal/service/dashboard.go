// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/models"
)

// DashboardKind is what the dashboard should render.
type DashboardKind int

const (
	DashboardLoading DashboardKind = iota
	DashboardSessionError
	DashboardListingError
	DashboardNoData
	DashboardNoUser
	DashboardReady
)

func (k DashboardKind) String() string {
	switch k {
	case DashboardLoading:
		return "loading"
	case DashboardSessionError:
		return "session_error"
	case DashboardListingError:
		return "listing_error"
	case DashboardNoData:
		return "no_data"
	case DashboardNoUser:
		return "no_user"
	case DashboardReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Dashboard is the composed view of the session and artifact sources.
// Err is set only for the two error kinds. User and Files are set whenever
// the corresponding source is ready.
type Dashboard struct {
	Kind  DashboardKind
	Err   error
	User  models.SessionUser
	Files []models.ArtifactRef
}

// ComposeDashboard merges the two sources. The first matching rule wins:
//
//  1. either source loading: Loading
//  2. session failed: SessionError
//  3. listing failed: ListingError
//  4. no artifacts: NoData
//  5. no user: NoUser
//  6. otherwise: Ready
func ComposeDashboard(user async.State[models.SessionUser], files async.State[[]models.ArtifactRef]) Dashboard {
	var d Dashboard
	d.User, _ = user.Value()
	d.Files, _ = files.Value()

	switch {
	case user.IsLoading() || files.IsLoading():
		d.Kind = DashboardLoading
	case user.IsFailed():
		d.Kind, d.Err = DashboardSessionError, user.Err()
	case files.IsFailed():
		d.Kind, d.Err = DashboardListingError, files.Err()
	case len(d.Files) == 0:
		d.Kind = DashboardNoData
	case d.User.IsZero():
		d.Kind = DashboardNoUser
	default:
		d.Kind = DashboardReady
	}
	return d
}

// Tab is the active dashboard tab. The zero value is [TabFiles].
type Tab int

const (
	TabFiles Tab = iota
	TabInfo
	TabUpload

	tabCount
)

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabFiles, TabInfo, TabUpload}
}

func (t Tab) Next() Tab { return (t + 1) % tabCount }

func (t Tab) Prev() Tab { return (t + tabCount - 1) % tabCount }

func (t Tab) String() string {
	switch t {
	case TabFiles:
		return "Files"
	case TabInfo:
		return "Info"
	case TabUpload:
		return "Upload"
	default:
		return "Unknown"
	}
}

// DashboardLoader runs the session and listing fetches concurrently and
// composes the result. Starting a new load cancels the previous one, and a
// load that was superseded or closed reports ok=false so the caller can
// drop it.
type DashboardLoader struct {
	session   Resolver
	artifacts Lister

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

func NewDashboardLoader(session Resolver, artifacts Lister) *DashboardLoader {
	return &DashboardLoader{session: session, artifacts: artifacts}
}

// Load fetches both sources and composes them. Neither completion order
// affects the result.
func (l *DashboardLoader) Load(ctx context.Context) (Dashboard, bool) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return Dashboard{Kind: DashboardLoading}, false
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	defer cancel()

	var (
		user  async.State[models.SessionUser]
		files async.State[[]models.ArtifactRef]
		g     errgroup.Group
	)
	g.Go(func() error {
		user = l.session.Resolve(loadCtx)
		return nil
	})
	g.Go(func() error {
		files = l.artifacts.List(loadCtx)
		return nil
	})
	_ = g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		return Dashboard{Kind: DashboardLoading}, false
	}
	l.cancel = nil
	return ComposeDashboard(user, files), true
}

// Close cancels any in-flight load. Later loads report ok=false.
func (l *DashboardLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
