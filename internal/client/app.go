// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/tui"
	"github.com/pii-sentinel/sentinel-client/internal/workers"
)

// App ties the UI and the background workers to one lifecycle.
type App struct {
	ui          UI
	workers     *workers.Workers
	metrics     MetricsWriter
	metricsFile string
	logger      *logger.Logger
}

// NewApp builds the application. metrics may be nil; metricsFile empty
// disables the textfile export.
func NewApp(ui UI, w *workers.Workers, metrics MetricsWriter, metricsFile string, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	if w == nil {
		w = workers.NewWorkers()
	}
	return &App{
		ui:          ui,
		workers:     w,
		metrics:     metrics,
		metricsFile: metricsFile,
		logger:      log.WithComponent("app"),
	}, nil
}

// Run starts the workers, blocks on the UI and waits for the workers to
// stop. Quitting with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)

	cancel()
	a.workers.Wait()
	a.flushMetrics()

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) flushMetrics() {
	if a.metrics == nil || a.metricsFile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		a.logger.Warn().Err(err).Str("path", a.metricsFile).Msg("failed to write metrics")
	}
}
