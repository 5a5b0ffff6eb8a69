// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI in the foreground and the background workers
// (device fingerprint computation) next to it, and tears both down together.
package client
