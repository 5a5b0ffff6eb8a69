// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the foreground part of the client. Run blocks until the user leaves.
type UI interface {
	Run(ctx context.Context) error
}

// MetricsWriter persists collected metrics when the process exits.
type MetricsWriter interface {
	WriteTextfile(path string) error
}
