// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/client"
	"github.com/pii-sentinel/sentinel-client/internal/config"
	"github.com/pii-sentinel/sentinel-client/internal/fingerprint"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/internal/tui"
	"github.com/pii-sentinel/sentinel-client/internal/workers"
	"github.com/pii-sentinel/sentinel-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("sentinel-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !log.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	collector := metrics.NewCollector()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Credentials, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	provider := fingerprint.NewProvider(fingerprint.NewHostSource(), log)
	services := service.NewClientServices(serverAdapter, storages.Credentials, provider, cfg.Storage.DownloadDir, collector, log)

	hasSession := func() bool {
		_, ok := storages.Credentials.Get()
		return ok
	}
	ui, err := tui.New(services, provider, hasSession, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(provider), collector, cfg.App.MetricsFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
