// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_SetsRequestIDHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{Timeout: time.Second})
	if _, err := client.R().Get(srv.URL); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

func TestNewHTTPClient_PropagatesContextRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{})
	ctx := WithRequestID(context.Background(), "req-1")
	if _, err := client.R().SetContext(ctx).Get(srv.URL); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestNewHTTPClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	// one token, refilled far slower than the test runs
	client := NewHTTPClient(HTTPClientOptions{RateLimit: 0.001, RateBurst: 1})

	if _, err := client.R().Get(srv.URL); err != nil {
		t.Fatalf("first request should pass, got: %v", err)
	}
	if _, err := client.R().Get(srv.URL); err == nil {
		t.Error("second request should be rejected by the rate limiter")
	}
}

func TestNewHTTPClient_TimeoutApplied(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{Timeout: 3 * time.Second})
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}
}
