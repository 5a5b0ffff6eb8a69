// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/mock"
	"github.com/pii-sentinel/sentinel-client/models"
)

var (
	errSession = errors.New("session failed")
	errListing = errors.New("listing failed")
	testUser   = models.SessionUser{ID: "1", DisplayName: "Ada", DeviceToken: "dev"}
	testFiles  = []models.ArtifactRef{{Name: "redacted_a.csv"}}
)

// ── ComposeDashboard ─────────────────────────────────────────────────────────

func TestComposeDashboard_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		user  async.State[models.SessionUser]
		files async.State[[]models.ArtifactRef]
		want  DashboardKind
		err   error
	}{
		{
			name:  "session loading beats listing error",
			user:  async.Pending[models.SessionUser](),
			files: async.Fail[[]models.ArtifactRef](errListing),
			want:  DashboardLoading,
		},
		{
			name:  "listing loading beats session error",
			user:  async.Fail[models.SessionUser](errSession),
			files: async.Pending[[]models.ArtifactRef](),
			want:  DashboardLoading,
		},
		{
			name:  "session error beats listing error",
			user:  async.Fail[models.SessionUser](errSession),
			files: async.Fail[[]models.ArtifactRef](errListing),
			want:  DashboardSessionError,
			err:   errSession,
		},
		{
			name:  "listing error",
			user:  async.Done(testUser),
			files: async.Fail[[]models.ArtifactRef](errListing),
			want:  DashboardListingError,
			err:   errListing,
		},
		{
			name:  "empty listing is no data",
			user:  async.Done(testUser),
			files: async.Done([]models.ArtifactRef{}),
			want:  DashboardNoData,
		},
		{
			name:  "no data beats no user",
			user:  async.Done(models.SessionUser{}),
			files: async.Done([]models.ArtifactRef{}),
			want:  DashboardNoData,
		},
		{
			name:  "no user",
			user:  async.Done(models.SessionUser{}),
			files: async.Done(testFiles),
			want:  DashboardNoUser,
		},
		{
			name:  "ready",
			user:  async.Done(testUser),
			files: async.Done(testFiles),
			want:  DashboardReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComposeDashboard(tt.user, tt.files)
			assert.Equal(t, tt.want, d.Kind, "got %s", d.Kind)
			if tt.err != nil {
				assert.ErrorIs(t, d.Err, tt.err)
			} else {
				assert.NoError(t, d.Err)
			}
		})
	}
}

func TestComposeDashboard_ReadyCarriesData(t *testing.T) {
	d := ComposeDashboard(async.Done(testUser), async.Done(testFiles))
	assert.Equal(t, testUser, d.User)
	assert.Equal(t, testFiles, d.Files)
}

// ── Tab ──────────────────────────────────────────────────────────────────────

func TestTab_Cycle(t *testing.T) {
	var tab Tab
	assert.Equal(t, TabFiles, tab)
	assert.Equal(t, TabInfo, tab.Next())
	assert.Equal(t, TabUpload, tab.Next().Next())
	assert.Equal(t, TabFiles, tab.Next().Next().Next())
	assert.Equal(t, TabUpload, tab.Prev())
	assert.Equal(t, "Upload", TabUpload.String())
	assert.Len(t, Tabs(), 3)
}

// ── DashboardLoader ──────────────────────────────────────────────────────────

func TestDashboardLoader_CompletionOrderDoesNotMatter(t *testing.T) {
	for _, sessionFirst := range []bool{true, false} {
		userDone := make(chan struct{})
		filesDone := make(chan struct{})

		resolver := resolverFunc(func(context.Context) async.State[models.SessionUser] {
			if !sessionFirst {
				<-filesDone
			}
			defer close(userDone)
			return async.Done(testUser)
		})
		lister := listerFunc(func(context.Context) async.State[[]models.ArtifactRef] {
			if sessionFirst {
				<-userDone
			}
			defer close(filesDone)
			return async.Done(testFiles)
		})

		d, ok := NewDashboardLoader(resolver, lister).Load(context.Background())
		require.True(t, ok)
		assert.Equal(t, DashboardReady, d.Kind)
	}
}

func TestDashboardLoader_NewLoadSupersedesOld(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	started := make(chan struct{})

	resolver := resolverFunc(func(ctx context.Context) async.State[models.SessionUser] {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-ctx.Done()
			return async.Fail[models.SessionUser](ctx.Err())
		}
		return async.Done(testUser)
	})
	lister := listerFunc(func(context.Context) async.State[[]models.ArtifactRef] {
		return async.Done(testFiles)
	})

	loader := NewDashboardLoader(resolver, lister)

	type result struct {
		d  Dashboard
		ok bool
	}
	firstRes := make(chan result, 1)
	go func() {
		d, ok := loader.Load(context.Background())
		firstRes <- result{d, ok}
	}()
	<-started

	d, ok := loader.Load(context.Background())
	require.True(t, ok)
	assert.Equal(t, DashboardReady, d.Kind)

	select {
	case r := <-firstRes:
		assert.False(t, r.ok, "superseded load must be dropped")
	case <-time.After(time.Second):
		t.Fatal("first load was not cancelled")
	}
}

func TestDashboardLoader_Close(t *testing.T) {
	started := make(chan struct{})
	resolver := resolverFunc(func(ctx context.Context) async.State[models.SessionUser] {
		close(started)
		<-ctx.Done()
		return async.Fail[models.SessionUser](ctx.Err())
	})
	lister := listerFunc(func(context.Context) async.State[[]models.ArtifactRef] {
		return async.Done(testFiles)
	})

	loader := NewDashboardLoader(resolver, lister)
	done := make(chan bool, 1)
	go func() {
		_, ok := loader.Load(context.Background())
		done <- ok
	}()
	<-started
	loader.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Close did not cancel the load")
	}

	_, ok := loader.Load(context.Background())
	assert.False(t, ok)
}

// ── ArtifactLister ───────────────────────────────────────────────────────────

func TestArtifactLister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	lister := NewArtifactLister(mockAdapter, logger.Nop())

	gomock.InOrder(
		mockAdapter.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil),
		mockAdapter.EXPECT().ListArtifacts(gomock.Any()).Return(testFiles, nil),
		mockAdapter.EXPECT().ListArtifacts(gomock.Any()).Return(nil, errListing),
	)

	empty := lister.List(context.Background())
	files, ok := empty.Value()
	require.True(t, ok, "empty listing is a success")
	assert.NotNil(t, files)
	assert.Empty(t, files)

	files, ok = lister.List(context.Background()).Value()
	require.True(t, ok)
	assert.Equal(t, testFiles, files)

	failed := lister.List(context.Background())
	assert.True(t, failed.IsFailed())
	assert.ErrorIs(t, failed.Err(), errListing)
}
