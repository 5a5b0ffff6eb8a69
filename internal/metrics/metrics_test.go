// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector()

	c.RecordRequest("login", OutcomeSuccess, 20*time.Millisecond)
	c.RecordRequest("login", OutcomeError, 5*time.Millisecond)
	c.RecordRequest("login", OutcomeError, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("login", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("login", OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.latency))
}

func TestCollector_RecordSubmissionRejected(t *testing.T) {
	c := NewCollector()

	c.RecordSubmissionRejected("register", "fingerprint_not_ready")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.rejections.WithLabelValues("register", "fingerprint_not_ready")))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.RecordRequest("me", OutcomeSuccess, time.Millisecond)

	path := filepath.Join(t.TempDir(), "client.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sentinel_client_requests_total{operation="me",outcome="success"} 1`)
}

func TestCollector_WriteTextfile_EmptyPath(t *testing.T) {
	assert.NoError(t, NewCollector().WriteTextfile(""))
}

func TestCollector_GathererIsIsolated(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	a.RecordRequest("x", OutcomeSuccess, 0)

	mfs, err := b.Gatherer().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "sentinel_client_requests_total" {
			assert.Empty(t, mf.GetMetric())
		}
	}
}
