// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credential is the opaque bearer token issued by the backend after a
// successful credential exchange. Its expiry is managed by the server; the
// client only ever stores, attaches, and clears it.
type Credential string

// NewCredential trims surrounding whitespace from a raw token value.
func NewCredential(raw string) Credential {
	return Credential(strings.TrimSpace(raw))
}

// IsZero reports whether the credential carries no token.
func (c Credential) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// String returns the raw token value.
func (c Credential) String() string {
	return string(c)
}

// BearerHeader returns the value for the Authorization header.
func (c Credential) BearerHeader() string {
	return "Bearer " + string(c)
}
