// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: log level and metrics output.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database and the download directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// MetricsFile, when set, receives a Prometheus text-format snapshot of
	// client request counters on exit.
	// Env: APP_METRICS_FILE
	MetricsFile string `env:"METRICS_FILE"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite database that keeps the session credential.
	DB DB `envPrefix:"DB_"`

	// DownloadDir is where redacted artifacts are saved.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// DB holds the local database settings.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the outbound HTTP settings for the PII Sentinel backend.
type Adapter struct {
	// Address is the backend base URL (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests per second; zero disables
	// client-side limiting.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token-bucket burst size.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Defaults used when no source sets a value.
const (
	DefaultAdapterAddress = "http://localhost:8000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "sentinel-client.db"
	DefaultDownloadDir    = "."
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			DownloadDir: DefaultDownloadDir,
		},
		Adapter: Adapter{
			Address:        DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from env, the
// given command-line args, the JSON file and defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
