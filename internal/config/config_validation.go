// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate normalises the backend address of the merged config. An empty
// address is left for the defaults layer.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.Address == "" {
		return nil
	}
	u, err := normalizeBaseURL(cfg.Adapter.Address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	cfg.Adapter.Address = u
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.TrimSpace(cfg.Storage.DownloadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
