// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(v string, err error) Source {
	return SourceFunc(func(context.Context) (string, error) { return v, err })
}

func TestProvider_NotReadyBeforeRun(t *testing.T) {
	p := NewProvider(staticSource("fp", nil), logger.Nop())

	assert.True(t, p.Get().IsLoading())
	_, ok := p.Value()
	assert.False(t, ok)

	select {
	case <-p.Ready():
		t.Fatal("ready channel closed before Run")
	default:
	}
}

func TestProvider_RunMakesValueAvailable(t *testing.T) {
	p := NewProvider(staticSource("  fp-123 ", nil), logger.Nop())

	p.Run(context.Background())

	v, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, "fp-123", v)

	select {
	case <-p.Ready():
	default:
		t.Fatal("ready channel not closed after Run")
	}
}

func TestProvider_ComputesOnce(t *testing.T) {
	var calls atomic.Int32
	src := SourceFunc(func(context.Context) (string, error) {
		calls.Add(1)
		return "fp", nil
	})
	p := NewProvider(src, logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestProvider_SubscribeBeforeReady_NotifiedOnce(t *testing.T) {
	release := make(chan struct{})
	src := SourceFunc(func(context.Context) (string, error) {
		<-release
		return "fp", nil
	})
	p := NewProvider(src, logger.Nop())

	var got []string
	var mu sync.Mutex
	p.Subscribe(func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	p.Start(context.Background())
	close(release)
	<-p.Ready()

	// a second Run must not re-notify
	p.Run(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fp"}, got)
}

func TestProvider_SubscribeAfterReady_CalledImmediately(t *testing.T) {
	p := NewProvider(staticSource("fp", nil), logger.Nop())
	p.Run(context.Background())

	var got string
	p.Subscribe(func(v string) { got = v })

	assert.Equal(t, "fp", got)
}

func TestProvider_SourceErrorStaysNotReady(t *testing.T) {
	boom := errors.New("no entropy")
	p := NewProvider(staticSource("", boom), logger.Nop())

	called := false
	p.Subscribe(func(string) { called = true })
	p.Run(context.Background())

	st := p.Get()
	assert.True(t, st.IsFailed())
	assert.ErrorIs(t, st.Err(), boom)
	_, ok := p.Value()
	assert.False(t, ok)
	assert.False(t, called)
}

func TestProvider_EmptyValueIsNeverReady(t *testing.T) {
	p := NewProvider(staticSource("   ", nil), logger.Nop())
	p.Run(context.Background())

	_, ok := p.Value()
	assert.False(t, ok)
	assert.ErrorIs(t, p.Get().Err(), ErrEmptyFingerprint)
}

func TestProvider_WaitHonoursContext(t *testing.T) {
	p := NewProvider(staticSource("fp", nil), logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Run(context.Background())
	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fp", v)
}
