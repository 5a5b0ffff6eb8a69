// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogLevel    string `json:"log_level"`
		MetricsFile string `json:"metrics_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		DownloadDir string `json:"download_dir"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:    jsonCfg.App.LogLevel,
			MetricsFile: jsonCfg.App.MetricsFile,
		},
		Storage: Storage{
			DB:          DB{DSN: jsonCfg.Storage.DB.DSN},
			DownloadDir: jsonCfg.Storage.DownloadDir,
		},
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			RateBurst:      jsonCfg.Adapter.RateBurst,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
