// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds a validated backend URL. It implements the flag.Value
// interface.
type BaseURL struct {
	raw string
}

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend base URL (http://host:port); a bare host:port gets http://
//	-d SQLite database file
//	-o download directory for redacted artifacts
//	-t request timeout (e.g., "15s")
//	-rate-limit requests per second (0 disables)
//	-rate-burst rate limiter burst size
//	-metrics-file Prometheus textfile written on exit
//	-log-level zerolog level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sentinel-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address BaseURL
	var dsn, downloadDir, metricsFile, logLevel, jsonConfigPath string
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int

	fs.Var(&address, "a", "Backend base URL")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.StringVar(&metricsFile, "metrics-file", "", "Prometheus textfile path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:    logLevel,
			MetricsFile: metricsFile,
		},
		Storage: Storage{
			DB:          DB{DSN: dsn},
			DownloadDir: downloadDir,
		},
		Adapter: Adapter{
			Address:        address.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the normalised URL, or "" when unset.
func (a *BaseURL) String() string {
	return a.raw
}

// Set validates s as an http(s) URL and stores it without a trailing slash.
func (a *BaseURL) Set(s string) error {
	u, err := normalizeBaseURL(s)
	if err != nil {
		return err
	}
	a.raw = u
	return nil
}

func normalizeBaseURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty address")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid address: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("address has no host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
