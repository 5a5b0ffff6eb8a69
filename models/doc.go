// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types exchanged between the sentinel client
// and the PII Sentinel backend, together with the client-side value types
// (credential, tier, artifact references) that the service layer passes to
// the terminal UI.
package models
