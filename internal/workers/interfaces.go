// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs, such as the device
// fingerprint computation, alongside the terminal UI.
package workers

import "context"

// Worker is implemented by any background job. Run blocks until the job is
// finished or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
