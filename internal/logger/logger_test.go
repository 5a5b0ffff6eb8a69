// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "sentinel-client")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "sentinel-client", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_CallerIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "r")

	l.Info().Msg("where")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerIsFunctionName")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l := Nop()
	assert.True(t, l.SetLevel("WARN"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.False(t, l.SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.False(t, l.SetLevel(""))
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "r").WithComponent("adapter")

	l.Info().Msg("x")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "adapter", entry["component"])
	assert.Equal(t, "r", entry["role"])
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&buf, "r")
	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "1").Logger()

	parent.Info().Msg("parent")

	entry := decodeEntry(t, &buf)
	assert.NotContains(t, entry, "extra")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "ctx-role")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
