// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogLevel    string
	MetricsFile string
}

// ClientAdapter holds the settings used by the HTTP adapter.
type ClientAdapter struct {
	// BaseURL is the normalised backend URL without a trailing slash.
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	DB          ClientDB
	DownloadDir string
}

// ClientConfig is the validated client configuration.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads the configuration using the process arguments and
// projects it onto [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is [GetClientConfig] with explicit command-line args.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:    cfg.App.LogLevel,
			MetricsFile: cfg.App.MetricsFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			DownloadDir: cfg.Storage.DownloadDir,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
