// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is the success body of POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the success body of endpoints that only report a
// human readable outcome (register, logout, resend verification).
type MessageResponse struct {
	Message string `json:"message"`
}

// FilesResponse is the body of GET /redacted/files.
type FilesResponse struct {
	Files []string `json:"files"`
}

// VerificationStatus is the body of GET /verification/check_verification_status.
type VerificationStatus struct {
	IsVerified bool `json:"is_verified"`
}
