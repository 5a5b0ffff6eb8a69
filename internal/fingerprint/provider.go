// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint computes the device fingerprint attached to every
// login and registration request.
//
// A [Provider] computes the value at most once per process. Until the
// computation finishes the fingerprint is not ready, and callers must not
// submit anything that requires it. Subscribers are notified exactly once,
// when the value becomes available.
package fingerprint

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pii-sentinel/sentinel-client/internal/async"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
)

// ErrEmptyFingerprint is recorded when a source returns a blank value.
var ErrEmptyFingerprint = errors.New("fingerprint source returned an empty value")

// Provider owns the process-wide device fingerprint.
//
// The zero value is not usable; construct with [NewProvider].
type Provider struct {
	source Source
	logger *logger.Logger

	once  sync.Once
	ready chan struct{}

	mu          sync.Mutex
	state       async.State[string]
	subscribers []func(string)
}

// NewProvider returns a provider that will compute its value from source
// once [Provider.Run] is called.
func NewProvider(source Source, log *logger.Logger) *Provider {
	return &Provider{
		source: source,
		logger: log.WithComponent("fingerprint"),
		ready:  make(chan struct{}),
		state:  async.Pending[string](),
	}
}

// Run computes the fingerprint. Only the first call does any work; later
// calls return immediately. It blocks until the source returns.
//
// A source error or an empty value moves the provider to the failed state,
// which callers treat the same as not ready. There is no retry.
func (p *Provider) Run(ctx context.Context) {
	p.once.Do(func() {
		value, err := p.source.Compute(ctx)
		value = strings.TrimSpace(value)
		if err == nil && value == "" {
			err = ErrEmptyFingerprint
		}

		if err != nil {
			p.logger.Error().Err(err).Msg("device fingerprint unavailable")
			p.mu.Lock()
			p.state = async.Fail[string](err)
			p.mu.Unlock()
			return
		}

		p.mu.Lock()
		p.state = async.Done(value)
		subs := p.subscribers
		p.subscribers = nil
		p.mu.Unlock()

		close(p.ready)
		p.logger.Debug().Msg("device fingerprint ready")

		for _, fn := range subs {
			fn(value)
		}
	})
}

// Start runs the computation in a background goroutine.
func (p *Provider) Start(ctx context.Context) {
	go p.Run(ctx)
}

// Get returns the current state. It never blocks.
func (p *Provider) Get() async.State[string] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Value returns the fingerprint and true once it is ready.
func (p *Provider) Value() (string, bool) {
	return p.Get().Value()
}

// Ready returns a channel that is closed when the fingerprint becomes
// available. It is never closed if computation fails.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

// Wait blocks until the fingerprint is ready or ctx is done.
func (p *Provider) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.ready:
		v, _ := p.Value()
		return v, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Subscribe registers fn to be called exactly once with the fingerprint.
// If the value is already available fn is invoked synchronously before
// Subscribe returns. fn is never called if computation fails.
func (p *Provider) Subscribe(fn func(string)) {
	p.mu.Lock()
	if v, ok := p.state.Value(); ok {
		p.mu.Unlock()
		fn(v)
		return
	}
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
}
