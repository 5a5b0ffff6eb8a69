// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/mock"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/internal/store"
)

type stubFingerprint struct {
	mu   sync.Mutex
	v    string
	subs []func(string)
}

func (f *stubFingerprint) Value() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v, f.v != ""
}

func (f *stubFingerprint) Subscribe(fn func(string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

type testEnv struct {
	adapter  *mock.MockServerAdapter
	creds    *store.MemoryCredentialStore
	fp       *stubFingerprint
	services *service.ClientServices
}

func newTestEnv(t *testing.T, fingerprint string) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		adapter: mock.NewMockServerAdapter(ctrl),
		creds:   &store.MemoryCredentialStore{},
		fp:      &stubFingerprint{v: fingerprint},
	}
	env.services = service.NewClientServices(env.adapter, env.creds, env.fp, t.TempDir(), metrics.Nop{}, logger.Nop())
	return env
}

// runCmd executes cmd and flattens batches into the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

var bg = context.Background()
