// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client
// packages: the HTTP client wrapper, request-ID propagation through
// context, unverified credential claim parsing, and BLAKE2b digests.
package utils
