// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrStateNotFound is returned by [ClientStateRepository.Get] when no row
	// exists for the requested key.
	ErrStateNotFound = errors.New("client state not found")

	// ErrEmptyCredential is returned by [CredentialStore.Set] when asked to
	// persist a blank token.
	ErrEmptyCredential = errors.New("empty credential")
)
