// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics counts the client's backend calls with Prometheus
// collectors. A terminal client is never scraped, so the registry is dumped
// to a node-exporter textfile on exit instead of being served.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder is what the adapter and services use to report requests.
type Recorder interface {
	RecordRequest(operation, outcome string, duration time.Duration)
	RecordSubmissionRejected(flow, reason string)
}

// Collector is the Prometheus-backed [Recorder].
type Collector struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinel_client_requests_total",
			Help: "Backend requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sentinel_client_request_duration_seconds",
			Help:    "Backend request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinel_client_submissions_rejected_total",
			Help: "Submissions refused before reaching the network.",
		}, []string{"flow", "reason"}),
	}

	c.registry.MustRegister(c.requests, c.latency, c.rejections)
	return c
}

func (c *Collector) RecordRequest(operation, outcome string, duration time.Duration) {
	c.requests.WithLabelValues(operation, outcome).Inc()
	c.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (c *Collector) RecordSubmissionRejected(flow, reason string) {
	c.rejections.WithLabelValues(flow, reason).Inc()
}

// Gatherer exposes the registry, mainly for tests.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the current values to path in the Prometheus text
// format. An empty path is a no-op.
func (c *Collector) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, c.registry)
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRequest(string, string, time.Duration) {}
func (Nop) RecordSubmissionRejected(string, string)     {}
