// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 5 * time.Second})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions tunes the underlying resty client.
//
// RateLimit is the number of requests per second allowed towards the
// backend; zero disables client-side limiting. RateBurst defaults to 1
// when limiting is on.
type HTTPClientOptions struct {
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Every outgoing request carries an X-Request-ID header. The value is taken
// from the request context when [WithRequestID] was used, otherwise a fresh
// UUID is generated. When a rate limit is configured, requests above the
// budget fail immediately with resty's rate-limit error instead of queueing.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New()
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.SetRateLimiter(rate.NewLimiter(rate.Limit(opts.RateLimit), burst))
	}
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := RequestIDFromContext(r.Context())
		if !ok {
			id = NewRequestID()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: c}
}
